package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"chorechum/internal/household/repository"
	"chorechum/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository for the household domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("household/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("household/repository/sqlite.%s", method)
}
