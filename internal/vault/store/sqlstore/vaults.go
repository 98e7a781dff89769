package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

type vaultsRepo struct {
	q querier
}

const vaultColumns = `id, account_id, name, created_at`

func (r *vaultsRepo) CreateVault(ctx context.Context, v domain.Vault) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO vaults (`+vaultColumns+`) VALUES (?, ?, ?, ?)`,
		v.ID, v.AccountID, v.Name, utc(v.CreatedAt),
	)
	return err
}

func (r *vaultsRepo) GetVaultByID(ctx context.Context, id string) (domain.Vault, error) {
	row := r.q.queryRow(ctx, `SELECT `+vaultColumns+` FROM vaults WHERE id = ?`, id)
	return r.scan(row)
}

func (r *vaultsRepo) FindVaultByIDAndOwner(ctx context.Context, id, accountID string) (domain.Vault, error) {
	row := r.q.queryRow(ctx,
		`SELECT `+vaultColumns+` FROM vaults WHERE id = ? AND account_id = ?`,
		id, accountID,
	)
	return r.scan(row)
}

func (r *vaultsRepo) ListVaultsByAccount(ctx context.Context, accountID string) ([]domain.Vault, error) {
	rows, err := r.q.query(ctx,
		`SELECT `+vaultColumns+` FROM vaults WHERE account_id = ? ORDER BY created_at, id`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Vault{}
	for rows.Next() {
		var v domain.Vault
		if err := rows.Scan(&v.ID, &v.AccountID, &v.Name, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *vaultsRepo) scan(row *sql.Row) (domain.Vault, error) {
	var v domain.Vault
	if err := row.Scan(&v.ID, &v.AccountID, &v.Name, &v.CreatedAt); err != nil {
		return domain.Vault{}, r.q.mapErr(err)
	}
	return v, nil
}
