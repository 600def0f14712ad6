// Package agegate implements the age-verification gate: configuration
// resolution, decision persistence, dialog state, and the validation state
// machine. Rendering and persistence are injected so the whole package runs
// headlessly.
package agegate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
)

// Configuration key names, shared by the structured-attribute shape and the
// authored row shape.
const (
	keyMinAge           = "min-age"
	keyStorageDuration  = "storage-duration"
	keyTitle            = "title"
	keyMessage          = "message"
	keyMonthPlaceholder = "month-placeholder"
	keyDayPlaceholder   = "day-placeholder"
	keyYearPlaceholder  = "year-placeholder"
	keyButtonText       = "button-text"
	keyErrorMessage     = "error-message"
)

const (
	defaultMinAge              = 18
	defaultStorageDurationDays = 30
	defaultTitle               = "Age Verification"
	defaultMessage             = "Please enter your date of birth to continue."
	defaultMonthPlaceholder    = "MM"
	defaultDayPlaceholder      = "DD"
	defaultYearPlaceholder     = "YYYY"
	defaultButtonText          = "Submit"
)

// ResolveConfig resolves one immutable GateConfig from a block mount.
// Structured attributes win over authored rows on a per-field basis; row
// labels are matched case-insensitively; unknown keys are ignored. Numeric
// fields fall back to their default when they don't parse as base-10
// integers. The default error message is derived from the resolved minimum
// age, never from the raw input. Resolution is pure.
func ResolveConfig(block *domain.Block) domain.GateConfig {
	lookup := newSourceLookup(block)

	cfg := domain.GateConfig{
		MinAge:              lookup.intValue(keyMinAge, defaultMinAge),
		StorageDurationDays: lookup.intValue(keyStorageDuration, defaultStorageDurationDays),
		Title:               lookup.strValue(keyTitle, defaultTitle),
		Message:             lookup.strValue(keyMessage, defaultMessage),
		MonthPlaceholder:    lookup.strValue(keyMonthPlaceholder, defaultMonthPlaceholder),
		DayPlaceholder:      lookup.strValue(keyDayPlaceholder, defaultDayPlaceholder),
		YearPlaceholder:     lookup.strValue(keyYearPlaceholder, defaultYearPlaceholder),
		ButtonText:          lookup.strValue(keyButtonText, defaultButtonText),
	}
	cfg.ErrorMessage = lookup.strValue(keyErrorMessage, defaultErrorMessage(cfg.MinAge))
	return cfg
}

func defaultErrorMessage(minAge int) string {
	return fmt.Sprintf("You must be at least %d years old to enter this site.", minAge)
}

// sourceLookup merges the two configuration shapes with attribute precedence.
type sourceLookup struct {
	attrs map[string]string
	rows  map[string]string
}

func newSourceLookup(block *domain.Block) sourceLookup {
	l := sourceLookup{attrs: map[string]string{}, rows: map[string]string{}}
	if block == nil {
		return l
	}
	for k, v := range block.Attrs {
		l.attrs[strings.ToLower(k)] = v
	}
	for _, row := range block.Rows {
		l.rows[strings.ToLower(strings.TrimSpace(row.Label))] = row.Value
	}
	return l
}

func (l sourceLookup) raw(key string) (string, bool) {
	if v, ok := l.attrs[key]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	if v, ok := l.rows[key]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	return "", false
}

func (l sourceLookup) strValue(key, fallback string) string {
	if v, ok := l.raw(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func (l sourceLookup) intValue(key string, fallback int) int {
	v, ok := l.raw(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
