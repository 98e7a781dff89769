package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

type accountsRepo struct {
	q querier
}

const accountColumns = `id, email, display_name, password_hash, profile_path, created_at, updated_at`

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.q.queryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return r.scan(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.q.queryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return r.scan(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.DisplayName, a.PasswordHash, mapOptionalString(a.ProfilePath),
		utc(a.CreatedAt), utc(a.UpdatedAt),
	)
	return err
}

func (r *accountsRepo) UpdateAccountPassword(ctx context.Context, accountID, passwordHash string, at time.Time) error {
	res, err := r.q.exec(ctx,
		`UPDATE accounts SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, utc(at), accountID,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *accountsRepo) scan(row *sql.Row) (domain.Account, error) {
	var (
		a       domain.Account
		profile sql.NullString
	)
	err := row.Scan(&a.ID, &a.Email, &a.DisplayName, &a.PasswordHash, &profile, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, r.q.mapErr(err)
	}
	a.ProfilePath = mapNullStringPtr(profile)
	return a, nil
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
