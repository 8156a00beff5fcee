package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Account AccountRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
