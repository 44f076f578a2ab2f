package usecase

import (
	"strings"
	"testing"
)

func TestExtractSefazCode(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"Status SEFAZ: 539 - Duplicidade", "539"},
		{"rejeitada cStat=204", "204"},
		{"Rejeição: 228 data atrasada", "228"},
		{"Código 703", "703"},
		{"timeout ao conectar", ""},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := ExtractSefazCode(tt.msg); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTranslateSefazError(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		info := TranslateSefazError("539", "Duplicidade de NF-e com diferenca na chave")
		if info.Code != "539" || info.Category != SefazCategoryDuplicate {
			t.Fatalf("unexpected info: %+v", info)
		}
		if !strings.Contains(info.Description, "diferenca na chave") {
			t.Fatalf("expected backend reason in description: %q", info.Description)
		}
	})

	t.Run("code extracted from reason", func(t *testing.T) {
		info := TranslateSefazError("", "Rejeicao: 252 ambiente")
		if info.Code != "252" || info.Category != SefazCategoryEnvironment {
			t.Fatalf("unexpected info: %+v", info)
		}
	})

	t.Run("unknown code falls back", func(t *testing.T) {
		info := TranslateSefazError("999", "")
		if info.Category != SefazCategoryOther || info.Code != "999" || info.Description == "" {
			t.Fatalf("unexpected info: %+v", info)
		}
	})
}
