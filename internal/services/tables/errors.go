package tables

// TablesError represents errors returned by the tables service
type TablesError string

func (e TablesError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     TablesError = "config cannot be nil"
	ErrNilRepository TablesError = "repository cannot be nil"
	ErrNilEvaluator  TablesError = "evaluator cannot be nil"
	ErrInvalidInput  TablesError = "invalid input"
)
