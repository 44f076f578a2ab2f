package usecase

import (
	"context"
	"errors"
	"testing"

	"nfe_backoffice/internal/domain/entities"
	mock_interfaces "nfe_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func storedOption() entities.AdditionalOption {
	return entities.AdditionalOption{
		ID:            "opt-1",
		CompanyID:     "c-1",
		Name:          "Molhos",
		MaxSelections: 2,
		Items: []entities.AdditionalItem{
			{ID: "i-1", Name: "Barbecue", Price: decimal.RequireFromString("2.00"), Position: 0},
			{ID: "i-2", Name: "Mostarda", Price: decimal.RequireFromString("1.50"), Position: 1},
			{ID: "i-3", Name: "Antigo", Position: 2, Deleted: true},
		},
	}
}

func echoOption(_ context.Context, o entities.AdditionalOption) (entities.AdditionalOption, error) {
	return o, nil
}

func TestAdditionalOptionUseCase_Create(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		uc := NewAdditionalOptionUseCase(nil, nil)
		if _, err := uc.Create(context.Background(), " ", OptionInput{Name: "x"}); !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "c-1", OptionInput{Name: "  "}); !errors.Is(err, ErrInvalidOptionName) {
			t.Fatalf("expected ErrInvalidOptionName, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "c-1", OptionInput{Name: "Molhos", MinSelections: 3, MaxSelections: 1}); !errors.Is(err, ErrInvalidSelectionBounds) {
			t.Fatalf("expected ErrInvalidSelectionBounds, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOption)

		opt, err := uc.Create(context.Background(), "c-1", OptionInput{Name: " Molhos ", MinSelections: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opt.ID == "" || opt.Name != "Molhos" || opt.CompanyID != "c-1" || opt.MaxSelections != 0 {
			t.Fatalf("unexpected option: %+v", opt)
		}
	})
}

func TestAdditionalOptionUseCase_Reads(t *testing.T) {
	t.Run("list hides deleted options and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		deleted := storedOption()
		deleted.ID = "opt-2"
		deleted.Deleted = true
		repo.EXPECT().ListByCompany(gomock.Any(), "c-1").Return([]entities.AdditionalOption{storedOption(), deleted}, nil)

		got, err := uc.List(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || len(got[0].Items) != 2 {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("option of another company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		opt := storedOption()
		opt.CompanyID = "c-2"
		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(opt, nil)

		if _, err := uc.Get(context.Background(), "c-1", "opt-1"); !errors.Is(err, ErrOptionNotFound) {
			t.Fatalf("expected ErrOptionNotFound, got %v", err)
		}
	})
}

func TestAdditionalOptionUseCase_Items(t *testing.T) {
	t.Run("add item goes last", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOption)

		opt, err := uc.AddItem(context.Background(), "c-1", "opt-1", ItemInput{Name: "Ketchup", Price: decimal.RequireFromString("1.999")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last := opt.Items[len(opt.Items)-1]
		if last.Name != "Ketchup" || last.Position != 2 || !last.Price.Equal(decimal.RequireFromString("2.00")) {
			t.Fatalf("unexpected item: %+v", last)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewAdditionalOptionUseCase(nil, nil)
		_, err := uc.AddItem(context.Background(), "c-1", "opt-1", ItemInput{Name: "X", Price: decimal.NewFromInt(-1)})
		if !errors.Is(err, ErrNegativeItemPrice) {
			t.Fatalf("expected ErrNegativeItemPrice, got %v", err)
		}
	})

	t.Run("deleted item cannot be edited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil)

		_, err := uc.UpdateItem(context.Background(), "c-1", "opt-1", "i-3", ItemInput{Name: "Novo"})
		if !errors.Is(err, ErrOptionItemNotFound) {
			t.Fatalf("expected ErrOptionItemNotFound, got %v", err)
		}
	})

	t.Run("delete item is soft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.AdditionalOption) (entities.AdditionalOption, error) {
				it := o.Items[o.ItemIndex("i-1")]
				if !it.Deleted || it.DeletedBy != "u-1" || it.DeletedAt.IsZero() {
					t.Fatalf("expected soft-deleted item, got %+v", it)
				}
				if len(o.Items) != 3 {
					t.Fatalf("items must never be removed")
				}
				return o, nil
			})

		opt, err := uc.DeleteItem(context.Background(), "c-1", "opt-1", "i-1", "u-1")
		if err != nil || len(opt.Items) != 1 {
			t.Fatalf("unexpected result: %+v %v", opt, err)
		}
	})

	t.Run("reorder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOption)

		opt, err := uc.ReorderItems(context.Background(), "c-1", "opt-1", []string{"i-2", "i-1"})
		if err != nil || opt.Items[0].ID != "i-2" || opt.Items[1].ID != "i-1" {
			t.Fatalf("unexpected result: %+v %v", opt.Items, err)
		}

		if _, err := uc.ReorderItems(context.Background(), "c-1", "opt-1", []string{"i-2", "i-2"}); !errors.Is(err, ErrReorderMismatch) {
			t.Fatalf("expected ErrReorderMismatch, got %v", err)
		}
	})

	t.Run("price override set resolve and clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
		uc := NewAdditionalOptionUseCase(repo, nil)

		var stored entities.AdditionalOption
		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.AdditionalOption) (entities.AdditionalOption, error) {
				stored = o
				return o, nil
			})

		price := decimal.RequireFromString("3.00")
		if _, err := uc.SetPriceOverride(context.Background(), "c-1", "opt-1", "i-1", "delivery", &price); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(stored, nil).Times(2)
		got, err := uc.ResolvePrice(context.Background(), "c-1", "opt-1", "i-1", "delivery")
		if err != nil || !got.Equal(price) {
			t.Fatalf("expected override price, got %s %v", got, err)
		}
		got, err = uc.ResolvePrice(context.Background(), "c-1", "opt-1", "i-1", "balcao")
		if err != nil || !got.Equal(decimal.RequireFromString("2.00")) {
			t.Fatalf("expected base price, got %s %v", got, err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOption)
		opt, err := uc.SetPriceOverride(context.Background(), "c-1", "opt-1", "i-1", "delivery", nil)
		if err != nil || opt.Items[0].PriceOverrides != nil {
			t.Fatalf("expected override cleared, got %+v %v", opt.Items[0], err)
		}
	})
}

func TestAdditionalOptionUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIAdditionalOptionRepository(ctrl)
	uc := NewAdditionalOptionUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "c-1", "opt-1").Return(storedOption(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.AdditionalOption) (entities.AdditionalOption, error) {
			if !o.Deleted || o.DeletedBy != "u-1" {
				t.Fatalf("expected soft-deleted option, got %+v", o)
			}
			for _, it := range o.Items {
				if !it.Deleted {
					t.Fatalf("expected cascaded delete, got %+v", it)
				}
			}
			return o, nil
		})

	if err := uc.Delete(context.Background(), "c-1", "opt-1", "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
