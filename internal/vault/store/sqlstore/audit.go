package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
)

type auditEventsRepo struct {
	q querier
}

func (r *auditEventsRepo) CreateAuditEvent(ctx context.Context, e domain.AuditEvent) error {
	_, err := r.q.exec(ctx,
		`INSERT INTO audit_events (id, account_id, action, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.AccountID, e.Action, utc(e.CreatedAt),
	)
	return err
}

func (r *auditEventsRepo) ListAuditEventsByAccount(ctx context.Context, accountID string, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.q.query(ctx, `
		SELECT id, account_id, action, created_at
		FROM audit_events
		WHERE account_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AuditEvent{}
	for rows.Next() {
		var e domain.AuditEvent
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Action, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *auditEventsRepo) DeleteAuditEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.exec(ctx, `DELETE FROM audit_events WHERE created_at < ?`, utc(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
