package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*SettingsRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SettingsRepo: &SettingsRepo{db: db},
		TaskRepo:     &TaskRepo{db: db},
	}
}
