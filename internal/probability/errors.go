package probability

// ProbabilityError is a custom error type for probability engine errors
type ProbabilityError string

// Error implements the error interface
func (e ProbabilityError) Error() string {
	return string(e)
}

const (
	// ErrInvalidArgument is returned for any input outside the domain of
	// the triangle builder or the distribution calculator
	ErrInvalidArgument ProbabilityError = "invalid argument"
)
