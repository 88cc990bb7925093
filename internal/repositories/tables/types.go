package tables

import "github.com/KirkDiggler/hog/internal/models"

// SaveDistributionsInput contains parameters for saving distributions
type SaveDistributionsInput struct {
	Tables []*models.DistributionTable
}

// LoadDistributionsInput contains parameters for loading distributions
type LoadDistributionsInput struct{}

// LoadDistributionsOutput contains the stored distributions
type LoadDistributionsOutput struct {
	Tables []*models.DistributionTable
}

// SaveValuesInput contains parameters for saving expected values
type SaveValuesInput struct {
	Entries []*models.ValueEntry
}

// LoadValuesInput contains parameters for loading expected values
type LoadValuesInput struct{}

// LoadValuesOutput contains the stored expected values
type LoadValuesOutput struct {
	Entries []*models.ValueEntry
}
