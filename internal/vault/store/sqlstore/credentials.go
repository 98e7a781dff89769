package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

type credentialsRepo struct {
	q querier
}

const credentialColumns = `id, vault_id, service_name, service_url, username, secret, created_at, updated_at`

func (r *credentialsRepo) InsertCredentials(ctx context.Context, batch []domain.Credential) error {
	for _, c := range batch {
		_, err := r.q.exec(ctx,
			`INSERT INTO credentials (`+credentialColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.VaultID, c.ServiceName, c.ServiceURL, c.Username, c.Secret,
			utc(c.CreatedAt), utc(c.UpdatedAt),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *credentialsRepo) GetCredentialByID(ctx context.Context, id string) (domain.Credential, error) {
	row := r.q.queryRow(ctx, `
		SELECT c.id, c.vault_id, v.account_id, c.service_name, c.service_url,
		       c.username, c.secret, c.created_at, c.updated_at
		FROM credentials c
		JOIN vaults v ON v.id = c.vault_id
		WHERE c.id = ?`, id)

	var c domain.Credential
	err := row.Scan(&c.ID, &c.VaultID, &c.OwnerID, &c.ServiceName, &c.ServiceURL,
		&c.Username, &c.Secret, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Credential{}, r.q.mapErr(err)
	}
	return c, nil
}

func (r *credentialsRepo) UpdateCredential(ctx context.Context, c domain.Credential) error {
	res, err := r.q.exec(ctx, `
		UPDATE credentials
		SET service_name = ?, service_url = ?, username = ?, secret = ?, updated_at = ?
		WHERE id = ?`,
		c.ServiceName, c.ServiceURL, c.Username, c.Secret, utc(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *credentialsRepo) DeleteCredential(ctx context.Context, id string) error {
	res, err := r.q.exec(ctx, `DELETE FROM credentials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *credentialsRepo) ListCredentialsByVault(ctx context.Context, vaultID string) ([]domain.Credential, error) {
	rows, err := r.q.query(ctx, `
		SELECT c.id, c.vault_id, v.account_id, c.service_name, c.service_url,
		       c.username, c.secret, c.created_at, c.updated_at
		FROM credentials c
		JOIN vaults v ON v.id = c.vault_id
		WHERE c.vault_id = ?
		ORDER BY c.created_at, c.id`, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Credential{}
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(&c.ID, &c.VaultID, &c.OwnerID, &c.ServiceName, &c.ServiceURL,
			&c.Username, &c.Secret, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
