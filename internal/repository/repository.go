package repository

import (
	"log/slog"
)

// DefaultTable is the table customers are read from when none is configured.
const DefaultTable = "customers"

// Repository reads customer rows from a Postgres table.
type Repository struct {
	db    Database
	table string
	log   *slog.Logger
}

// NewRepository creates a new instance of Repository reading customers from table.
// An empty table name falls back to DefaultTable.
func NewRepository(db Database, table string, log *slog.Logger) *Repository {
	if table == "" {
		table = DefaultTable
	}
	return &Repository{db: db, table: table, log: log}
}
