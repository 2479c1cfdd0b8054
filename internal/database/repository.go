package database

import "database/sql"

// Repository wraps a database connection and provides all data access methods.
// The embedded repos give it the full DataStore surface.
type Repository struct {
	*ProjectRepo
	*ColumnRepo
	*TaskRepo
	*LabelRepo
	*ChecklistRepo
	db *sql.DB
}

// NewRepository creates a new Repository with all sub-repos initialized
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProjectRepo:   &ProjectRepo{db: db},
		ColumnRepo:    &ColumnRepo{db: db},
		TaskRepo:      &TaskRepo{db: db},
		LabelRepo:     &LabelRepo{db: db},
		ChecklistRepo: &ChecklistRepo{db: db},
		db:            db,
	}
}

// DB returns the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}
