package domain

// GateConfig is the fully-resolved configuration for one age-gate mount.
// It is immutable once resolved; see the agegate package for resolution rules.
type GateConfig struct {
	MinAge              int
	StorageDurationDays int
	Title               string
	Message             string
	MonthPlaceholder    string
	DayPlaceholder      string
	YearPlaceholder     string
	ButtonText          string
	ErrorMessage        string
}
