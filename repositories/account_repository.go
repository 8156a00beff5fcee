package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/signin-with-google/models"
)

// ErrNoAccount is returned when no account matches
var ErrNoAccount = errors.New("no account")

// AccountRepository persists backend accounts and the current session
type AccountRepository interface {
	Upsert(ctx context.Context, account *models.Account) error
	GetByUID(ctx context.Context, uid string) (*models.Account, error)
	SetCurrent(ctx context.Context, uid string, signedInAt time.Time) error
	GetCurrent(ctx context.Context) (*models.Account, error)
	ClearCurrent(ctx context.Context) error
}

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Upsert creates the account or refreshes its profile fields
func (r *accountRepository) Upsert(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (uid, display_name, email, photo_url, provider, last_sign_in_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			display_name = excluded.display_name,
			email = excluded.email,
			photo_url = excluded.photo_url,
			provider = excluded.provider,
			last_sign_in_at = excluded.last_sign_in_at
	`

	_, err := r.db.ExecContext(ctx, query,
		account.UID,
		account.DisplayName,
		account.Email,
		account.PhotoURL,
		account.Provider,
		account.SignedInAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert account: %w", err)
	}

	return nil
}

// GetByUID retrieves an account by its backend id
func (r *accountRepository) GetByUID(ctx context.Context, uid string) (*models.Account, error) {
	query := `
		SELECT uid, display_name, email, photo_url, provider, last_sign_in_at
		FROM accounts
		WHERE uid = ?
	`

	return r.scanAccount(r.db.QueryRowContext(ctx, query, uid))
}

// SetCurrent makes uid the signed-in account, replacing any previous one
func (r *accountRepository) SetCurrent(ctx context.Context, uid string, signedInAt time.Time) error {
	query := `
		INSERT INTO current_session (id, uid, signed_in_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			uid = excluded.uid,
			signed_in_at = excluded.signed_in_at
	`

	if _, err := r.db.ExecContext(ctx, query, uid, signedInAt); err != nil {
		return fmt.Errorf("failed to set current session: %w", err)
	}

	return nil
}

// GetCurrent retrieves the signed-in account
func (r *accountRepository) GetCurrent(ctx context.Context) (*models.Account, error) {
	query := `
		SELECT a.uid, a.display_name, a.email, a.photo_url, a.provider, s.signed_in_at
		FROM current_session s
		JOIN accounts a ON a.uid = s.uid
		WHERE s.id = 1
	`

	return r.scanAccount(r.db.QueryRowContext(ctx, query))
}

// ClearCurrent signs the current account out
func (r *accountRepository) ClearCurrent(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM current_session"); err != nil {
		return fmt.Errorf("failed to clear current session: %w", err)
	}
	return nil
}

func (r *accountRepository) scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	var signedInAt sql.NullTime

	err := row.Scan(
		&account.UID,
		&account.DisplayName,
		&account.Email,
		&account.PhotoURL,
		&account.Provider,
		&signedInAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoAccount
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if signedInAt.Valid {
		account.SignedInAt = signedInAt.Time
	}

	return &account, nil
}
