package agegate

import (
	"testing"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveConfig_AllDefaults(t *testing.T) {
	cfg := ResolveConfig(&domain.Block{Type: domain.BlockTypeAgeGate})

	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, 30, cfg.StorageDurationDays)
	assert.Equal(t, "Age Verification", cfg.Title)
	assert.Equal(t, "Please enter your date of birth to continue.", cfg.Message)
	assert.Equal(t, "MM", cfg.MonthPlaceholder)
	assert.Equal(t, "DD", cfg.DayPlaceholder)
	assert.Equal(t, "YYYY", cfg.YearPlaceholder)
	assert.Equal(t, "Submit", cfg.ButtonText)
	assert.Equal(t, "You must be at least 18 years old to enter this site.", cfg.ErrorMessage)
}

func TestResolveConfig_NilBlock_Defaults(t *testing.T) {
	cfg := ResolveConfig(nil)
	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, "Age Verification", cfg.Title)
}

func TestResolveConfig_RowsSourced_CaseInsensitive(t *testing.T) {
	block := &domain.Block{
		Rows: []domain.Row{
			{Label: "Min-Age", Value: "21"},
			{Label: "TITLE", Value: "Are you of age?"},
			{Label: "storage-duration", Value: "7"},
		},
	}
	cfg := ResolveConfig(block)

	assert.Equal(t, 21, cfg.MinAge)
	assert.Equal(t, "Are you of age?", cfg.Title)
	assert.Equal(t, 7, cfg.StorageDurationDays)
}

func TestResolveConfig_AttrsWinOverRows_PerField(t *testing.T) {
	block := &domain.Block{
		Attrs: map[string]string{"min-age": "25"},
		Rows: []domain.Row{
			{Label: "min-age", Value: "21"},
			{Label: "button-text", Value: "Enter"},
		},
	}
	cfg := ResolveConfig(block)

	// min-age comes from the attribute, button-text from the row.
	assert.Equal(t, 25, cfg.MinAge)
	assert.Equal(t, "Enter", cfg.ButtonText)
}

func TestResolveConfig_UnknownRowKeys_Ignored(t *testing.T) {
	block := &domain.Block{
		Rows: []domain.Row{
			{Label: "background-color", Value: "red"},
			{Label: "min-age", Value: "21"},
		},
	}
	cfg := ResolveConfig(block)
	assert.Equal(t, 21, cfg.MinAge)
}

func TestResolveConfig_NumericParseFailure_FallsBackToDefault(t *testing.T) {
	block := &domain.Block{
		Attrs: map[string]string{
			"min-age":          "twenty-one",
			"storage-duration": "1.5",
		},
	}
	cfg := ResolveConfig(block)

	assert.Equal(t, 18, cfg.MinAge)
	assert.Equal(t, 30, cfg.StorageDurationDays)
}

func TestResolveConfig_NegativeNumeric_FallsBackToDefault(t *testing.T) {
	block := &domain.Block{Attrs: map[string]string{"min-age": "-1"}}
	cfg := ResolveConfig(block)
	assert.Equal(t, 18, cfg.MinAge)
}

func TestResolveConfig_ZeroStorageDuration_Allowed(t *testing.T) {
	block := &domain.Block{Attrs: map[string]string{"storage-duration": "0"}}
	cfg := ResolveConfig(block)
	assert.Equal(t, 0, cfg.StorageDurationDays)
}

func TestResolveConfig_DerivedErrorMessage_UsesResolvedMinAge(t *testing.T) {
	block := &domain.Block{Rows: []domain.Row{{Label: "min-age", Value: "21"}}}
	cfg := ResolveConfig(block)
	assert.Equal(t, "You must be at least 21 years old to enter this site.", cfg.ErrorMessage)
}

func TestResolveConfig_ExplicitErrorMessage_WinsOverDerived(t *testing.T) {
	block := &domain.Block{
		Attrs: map[string]string{"min-age": "21", "error-message": "Come back later."},
	}
	cfg := ResolveConfig(block)
	assert.Equal(t, "Come back later.", cfg.ErrorMessage)
}

func TestResolveConfig_BlankValues_FallBack(t *testing.T) {
	block := &domain.Block{
		Attrs: map[string]string{"title": "   "},
		Rows:  []domain.Row{{Label: "title", Value: "From The Row"}},
	}
	cfg := ResolveConfig(block)
	assert.Equal(t, "From The Row", cfg.Title)
}
