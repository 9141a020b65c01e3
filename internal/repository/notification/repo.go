package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/paviotti-fleet/monitor/internal/model"
)

var (
	ErrLogNotFound = errors.New("notification log not found")
)

// Limits applied by the retry selection rule. Rows that keep failing past
// maxRetryCount become a soft dead-letter: still queryable, never retried.
const (
	retryBatchSize = 10
	maxRetryCount  = 3
)

// Repository provides methods to interact with the notification_log table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new log row and returns its ID.
func (r *Repository) Create(ctx context.Context, log model.NotificationLog) (uuid.UUID, error) {
	query := `
		INSERT INTO notification_log (
		    type, entity_type, entity_id, message, sent_to, status, response, retry_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		log.Type, log.EntityType, log.EntityID, log.Message, log.SentTo, log.Status, log.Response, log.RetryCount,
	).Scan(&log.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification log: %w", err)
	}

	return log.ID, nil
}

// GetStatusByID retrieves the delivery status of a log row by its ID.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM notification_log
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLogNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// MarkSent marks an outbound row as delivered. Sent is terminal.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, response string) error {
	query := `
		UPDATE notification_log
		SET status = $1, response = $2
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusSent, response, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification log sent: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

// MarkFailed records a failed delivery attempt and bumps the retry count.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, response string) error {
	query := `
		UPDATE notification_log
		SET status = $1, response = $2, retry_count = retry_count + 1
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusFailed, response, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification log failed: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrLogNotFound
	}

	return nil
}

// ListFailedForRetry selects the next retry batch: failed rows that have not
// exhausted their retry budget, oldest first, at most ten at a time.
func (r *Repository) ListFailedForRetry(ctx context.Context) ([]model.NotificationLog, error) {
	query := `
		SELECT id, type, entity_type, entity_id, message, sent_to, status, response, retry_count, sent_at
		FROM notification_log
		WHERE status = $1 AND retry_count < $2
		ORDER BY sent_at ASC
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusFailed, maxRetryCount, retryBatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list failed notifications: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// List returns log rows newest first, optionally filtered by status.
func (r *Repository) List(ctx context.Context, limit int, status string) ([]model.NotificationLog, error) {
	query := `
		SELECT id, type, entity_type, entity_id, message, sent_to, status, response, retry_count, sent_at
		FROM notification_log
		WHERE ($1 = '' OR status = $1)
		ORDER BY sent_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// Stats returns aggregate counts over the whole log.
func (r *Repository) Stats(ctx context.Context) (model.Stats, error) {
	query := `
		SELECT
		    COUNT(*),
		    COUNT(*) FILTER (WHERE status = 'sent'),
		    COUNT(*) FILTER (WHERE status = 'failed'),
		    COUNT(*) FILTER (WHERE status = 'pending')
		FROM notification_log;
    `

	var stats model.Stats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Sent, &stats.Failed, &stats.Pending)
	if err != nil {
		return model.Stats{}, fmt.Errorf("failed to get notification stats: %w", err)
	}

	return stats, nil
}

func scanLogs(rows *sql.Rows) ([]model.NotificationLog, error) {
	var logs []model.NotificationLog

	for rows.Next() {
		var l model.NotificationLog
		if err := rows.Scan(
			&l.ID, &l.Type, &l.EntityType, &l.EntityID, &l.Message,
			&l.SentTo, &l.Status, &l.Response, &l.RetryCount, &l.SentAt,
		); err != nil {
			return nil, err
		}

		logs = append(logs, l)
	}

	return logs, rows.Err()
}
