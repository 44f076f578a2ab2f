package usecase

import (
	"context"
	"errors"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOptionNotFound         = errors.New("additional option not found")
	ErrOptionItemNotFound     = errors.New("additional item not found")
	ErrInvalidOptionName      = errors.New("option name is required")
	ErrInvalidSelectionBounds = errors.New("invalid selection bounds: minimum must be >= 0 and <= maximum")
	ErrInvalidItemName        = errors.New("item name is required")
	ErrNegativeItemPrice      = errors.New("item price must be >= 0")
	ErrInvalidPriceTable      = errors.New("price table id is required")
	ErrReorderMismatch        = errors.New("reorder must list every active item exactly once")
)

const maxOptionNameLength = 120

type OptionInput struct {
	Name          string
	MinSelections int
	MaxSelections int
}

type ItemInput struct {
	Name  string
	Price decimal.Decimal
}

// IAdditionalOptionUseCase manages product modifier groups and their items.
// Reads only ever return non-deleted options and items.
type IAdditionalOptionUseCase interface {
	List(ctx context.Context, companyID string) ([]entities.AdditionalOption, error)
	Get(ctx context.Context, companyID, id string) (entities.AdditionalOption, error)
	Create(ctx context.Context, companyID string, in OptionInput) (entities.AdditionalOption, error)
	Update(ctx context.Context, companyID, id string, in OptionInput) (entities.AdditionalOption, error)
	Delete(ctx context.Context, companyID, id, actor string) error
	AddItem(ctx context.Context, companyID, optionID string, in ItemInput) (entities.AdditionalOption, error)
	UpdateItem(ctx context.Context, companyID, optionID, itemID string, in ItemInput) (entities.AdditionalOption, error)
	DeleteItem(ctx context.Context, companyID, optionID, itemID, actor string) (entities.AdditionalOption, error)
	ReorderItems(ctx context.Context, companyID, optionID string, itemIDs []string) (entities.AdditionalOption, error)
	SetPriceOverride(ctx context.Context, companyID, optionID, itemID, priceTableID string, price *decimal.Decimal) (entities.AdditionalOption, error)
	ResolvePrice(ctx context.Context, companyID, optionID, itemID, priceTableID string) (decimal.Decimal, error)
}

type AdditionalOptionUseCase struct {
	repo   interfaces.IAdditionalOptionRepository
	logger *zap.Logger
}

var _ IAdditionalOptionUseCase = (*AdditionalOptionUseCase)(nil)

func NewAdditionalOptionUseCase(repo interfaces.IAdditionalOptionRepository, logger *zap.Logger) *AdditionalOptionUseCase {
	return &AdditionalOptionUseCase{repo: repo, logger: loggerOrNop(logger)}
}

func validateOptionInput(in OptionInput) (OptionInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || len([]rune(in.Name)) > maxOptionNameLength {
		return in, ErrInvalidOptionName
	}
	if !entities.ValidSelectionBounds(in.MinSelections, in.MaxSelections) {
		return in, ErrInvalidSelectionBounds
	}
	return in, nil
}

func validateItemInput(in ItemInput) (ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || len([]rune(in.Name)) > maxOptionNameLength {
		return in, ErrInvalidItemName
	}
	if in.Price.IsNegative() {
		return in, ErrNegativeItemPrice
	}
	return in, nil
}

// visible strips soft-deleted items and orders the rest by position.
func visible(opt entities.AdditionalOption) entities.AdditionalOption {
	opt.Items = opt.ActiveItems()
	return opt
}

func (u *AdditionalOptionUseCase) List(ctx context.Context, companyID string) ([]entities.AdditionalOption, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, ErrInvalidCompanyID
	}
	all, err := u.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AdditionalOption, 0, len(all))
	for _, o := range all {
		if !o.Deleted {
			out = append(out, visible(o))
		}
	}
	return out, nil
}

func (u *AdditionalOptionUseCase) Get(ctx context.Context, companyID, id string) (entities.AdditionalOption, error) {
	opt, err := u.load(ctx, companyID, id)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	return visible(opt), nil
}

// load returns the stored option with every item, deleted ones included.
func (u *AdditionalOptionUseCase) load(ctx context.Context, companyID, id string) (entities.AdditionalOption, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if companyID == "" {
		return entities.AdditionalOption{}, ErrInvalidCompanyID
	}
	if id == "" {
		return entities.AdditionalOption{}, ErrOptionNotFound
	}
	opt, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	if opt.ID == "" || opt.Deleted || opt.CompanyID != companyID {
		return entities.AdditionalOption{}, ErrOptionNotFound
	}
	return opt, nil
}

func (u *AdditionalOptionUseCase) save(ctx context.Context, opt entities.AdditionalOption) (entities.AdditionalOption, error) {
	opt.UpdatedAt = utcNow()
	saved, err := u.repo.Update(ctx, opt)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	if saved.ID == "" {
		return entities.AdditionalOption{}, ErrOptionNotFound
	}
	return visible(saved), nil
}

func (u *AdditionalOptionUseCase) Create(ctx context.Context, companyID string, in OptionInput) (entities.AdditionalOption, error) {
	if strings.TrimSpace(companyID) == "" {
		return entities.AdditionalOption{}, ErrInvalidCompanyID
	}
	in, err := validateOptionInput(in)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	now := utcNow()
	created, err := u.repo.Create(ctx, entities.AdditionalOption{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		Name:          in.Name,
		MinSelections: in.MinSelections,
		MaxSelections: in.MaxSelections,
		Items:         []entities.AdditionalItem{},
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	u.logger.Info("[options][usecase] option created", zap.String("option_id", created.ID), zap.String("company_id", companyID))
	return created, nil
}

func (u *AdditionalOptionUseCase) Update(ctx context.Context, companyID, id string, in OptionInput) (entities.AdditionalOption, error) {
	in, err := validateOptionInput(in)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	opt, err := u.load(ctx, companyID, id)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	opt.Name = in.Name
	opt.MinSelections = in.MinSelections
	opt.MaxSelections = in.MaxSelections
	return u.save(ctx, opt)
}

// Delete soft-deletes the option together with its items.
func (u *AdditionalOptionUseCase) Delete(ctx context.Context, companyID, id, actor string) error {
	opt, err := u.load(ctx, companyID, id)
	if err != nil {
		return err
	}
	opt.SoftDelete(actor, utcNow())
	if _, err := u.repo.Update(ctx, opt); err != nil {
		return err
	}
	u.logger.Info("[options][usecase] option deleted", zap.String("option_id", id), zap.String("actor", actor))
	return nil
}

func (u *AdditionalOptionUseCase) AddItem(ctx context.Context, companyID, optionID string, in ItemInput) (entities.AdditionalOption, error) {
	in, err := validateItemInput(in)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	next := 0
	for _, it := range opt.ActiveItems() {
		if it.Position >= next {
			next = it.Position + 1
		}
	}
	opt.Items = append(opt.Items, entities.AdditionalItem{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price.Round(2),
		Position: next,
	})
	return u.save(ctx, opt)
}

func activeItem(opt entities.AdditionalOption, itemID string) (int, error) {
	idx := opt.ItemIndex(strings.TrimSpace(itemID))
	if idx < 0 || opt.Items[idx].Deleted {
		return -1, ErrOptionItemNotFound
	}
	return idx, nil
}

func (u *AdditionalOptionUseCase) UpdateItem(ctx context.Context, companyID, optionID, itemID string, in ItemInput) (entities.AdditionalOption, error) {
	in, err := validateItemInput(in)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	idx, err := activeItem(opt, itemID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	opt.Items[idx].Name = in.Name
	opt.Items[idx].Price = in.Price.Round(2)
	return u.save(ctx, opt)
}

func (u *AdditionalOptionUseCase) DeleteItem(ctx context.Context, companyID, optionID, itemID, actor string) (entities.AdditionalOption, error) {
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	idx, err := activeItem(opt, itemID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	now := utcNow()
	opt.Items[idx].Deleted = true
	opt.Items[idx].DeletedAt = now
	opt.Items[idx].DeletedBy = actor
	return u.save(ctx, opt)
}

// ReorderItems assigns positions 0..n-1 following itemIDs.
func (u *AdditionalOptionUseCase) ReorderItems(ctx context.Context, companyID, optionID string, itemIDs []string) (entities.AdditionalOption, error) {
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	if len(itemIDs) != len(opt.ActiveItems()) {
		return entities.AdditionalOption{}, ErrReorderMismatch
	}
	seen := make(map[string]bool, len(itemIDs))
	for pos, id := range itemIDs {
		idx, err := activeItem(opt, id)
		if err != nil || seen[id] {
			return entities.AdditionalOption{}, ErrReorderMismatch
		}
		seen[id] = true
		opt.Items[idx].Position = pos
	}
	return u.save(ctx, opt)
}

// SetPriceOverride sets the item price for one price table; a nil price clears it.
func (u *AdditionalOptionUseCase) SetPriceOverride(ctx context.Context, companyID, optionID, itemID, priceTableID string, price *decimal.Decimal) (entities.AdditionalOption, error) {
	priceTableID = strings.TrimSpace(priceTableID)
	if priceTableID == "" {
		return entities.AdditionalOption{}, ErrInvalidPriceTable
	}
	if price != nil && price.IsNegative() {
		return entities.AdditionalOption{}, ErrNegativeItemPrice
	}
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}
	idx, err := activeItem(opt, itemID)
	if err != nil {
		return entities.AdditionalOption{}, err
	}

	overrides := make(map[string]decimal.Decimal, len(opt.Items[idx].PriceOverrides)+1)
	for k, v := range opt.Items[idx].PriceOverrides {
		overrides[k] = v
	}
	if price == nil {
		delete(overrides, priceTableID)
	} else {
		overrides[priceTableID] = price.Round(2)
	}
	if len(overrides) == 0 {
		overrides = nil
	}
	opt.Items[idx].PriceOverrides = overrides
	return u.save(ctx, opt)
}

func (u *AdditionalOptionUseCase) ResolvePrice(ctx context.Context, companyID, optionID, itemID, priceTableID string) (decimal.Decimal, error) {
	opt, err := u.load(ctx, companyID, optionID)
	if err != nil {
		return decimal.Zero, err
	}
	idx, err := activeItem(opt, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	return opt.Items[idx].PriceFor(strings.TrimSpace(priceTableID)), nil
}
