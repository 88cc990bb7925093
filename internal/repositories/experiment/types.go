package experiment

import "github.com/KirkDiggler/hog/internal/models"

type SaveResultInput struct {
	Result *models.ExperimentResult
}

type GetResultInput struct {
	ResultID string
}

type ListResultsInput struct {
	Name string

	// Limit keeps only the most recent results when positive
	Limit int
}

type ListResultsOutput struct {
	Results []*models.ExperimentResult
}

type ListNamesInput struct {
}

type ListNamesOutput struct {
	Names []string
}

type DeleteResultInput struct {
	ResultID string
}
