package experiment

// ExperimentError is a custom error type for experiment errors
type ExperimentError string

// Error implements the error interface
func (e ExperimentError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        ExperimentError = "config cannot be nil"
	ErrNilDiceRoller    ExperimentError = "dice roller cannot be nil"
	ErrNilGameService   ExperimentError = "game service cannot be nil"
	ErrNilRepository    ExperimentError = "repository cannot be nil"
	ErrNilCatalog       ExperimentError = "catalog cannot be nil"
	ErrNilClock         ExperimentError = "clock cannot be nil"
	ErrNilUUIDGenerator ExperimentError = "UUID generator cannot be nil"
	ErrInvalidSamples   ExperimentError = "samples must be positive"
	ErrInvalidPlan      ExperimentError = "invalid experiment plan"
	ErrUnknownKind      ExperimentError = "unknown experiment kind"
)
