package collector

import "database/sql"

// Factory creates samplers with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateSwitchRateSampler() Sampler
	CreateArchiveRateSampler() Sampler
	CreateTransactionSampler() Sampler
	CreateArchiveWindowSampler() Sampler
}

// DefaultFactory creates samplers backed by the source database.
type DefaultFactory struct {
	DB *sql.DB
}

// NewDefaultFactory creates a factory over an open database handle.
func NewDefaultFactory(db *sql.DB) *DefaultFactory {
	return &DefaultFactory{DB: db}
}

// CreateSwitchRateSampler creates the log switch rate sampler.
func (f *DefaultFactory) CreateSwitchRateSampler() Sampler {
	return &switchRateSampler{db: f.DB}
}

// CreateArchiveRateSampler creates the archive volume sampler.
func (f *DefaultFactory) CreateArchiveRateSampler() Sampler {
	return &archiveRateSampler{db: f.DB}
}

// CreateTransactionSampler creates the open transaction sampler.
func (f *DefaultFactory) CreateTransactionSampler() Sampler {
	return &transactionSampler{db: f.DB}
}

// CreateArchiveWindowSampler creates the archive retention window sampler.
func (f *DefaultFactory) CreateArchiveWindowSampler() Sampler {
	return &archiveWindowSampler{db: f.DB}
}

// AllSamplers returns one sampler of each kind from the factory.
func AllSamplers(f Factory) []Sampler {
	return []Sampler{
		f.CreateSwitchRateSampler(),
		f.CreateArchiveRateSampler(),
		f.CreateTransactionSampler(),
		f.CreateArchiveWindowSampler(),
	}
}
