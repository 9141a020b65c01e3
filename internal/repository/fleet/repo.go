// Package fleet reads entity snapshots from the fleet store. The store is
// owned by the CRUD layer; this repository only ever selects from it.
package fleet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/dbpg"

	"github.com/paviotti-fleet/monitor/internal/model"
)

// Defaults used when no maintenance config row exists yet.
const (
	defaultServiceKmInterval    = 10000
	defaultServiceMonthInterval = 6
	defaultCheckIntervalDays    = 1
)

// Repository provides read-only access to vehicles, users and the
// maintenance configuration.
type Repository struct {
	db *dbpg.DB

	// fallbackRecipient is the legacy single recipient from the
	// NOTIFICATION_EMAIL environment setting, used when the config row
	// has no recipients of its own.
	fallbackRecipient string
}

// NewRepository creates a fleet snapshot repository.
func NewRepository(db *dbpg.DB, fallbackRecipient string) *Repository {
	return &Repository{db: db, fallbackRecipient: fallbackRecipient}
}

// ListVehicles returns a snapshot of every vehicle in the fleet.
func (r *Repository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	query := `
		SELECT id, plate, brand, model, vtv_expiry, insurance_expiry,
		       current_mileage, last_service_mileage, last_service_date
		FROM vehicles
		ORDER BY plate;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(
			&v.ID, &v.Plate, &v.Brand, &v.Model, &v.VTVExpiry, &v.InsuranceExpiry,
			&v.CurrentMileage, &v.LastServiceMileage, &v.LastServiceDate,
		); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// ListUsers returns a snapshot of every user.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, name, email, active, license_expiration
		FROM users
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Active, &u.LicenseExpiration); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

// GetThresholdConfig loads the single maintenance configuration row. When
// the row is missing, defaults apply and email alerts stay enabled with the
// legacy fallback recipient only. Recipients are stored comma-separated;
// they come back trimmed, deduplicated and in their stored order.
func (r *Repository) GetThresholdConfig(ctx context.Context) (model.ThresholdConfig, error) {
	query := `
		SELECT service_km_interval, service_month_interval, check_interval_days,
		       notification_emails, enable_email_alerts
		FROM maintenance_config
		LIMIT 1;
    `

	cfg := model.ThresholdConfig{
		ServiceKmInterval:    defaultServiceKmInterval,
		ServiceMonthInterval: defaultServiceMonthInterval,
		CheckIntervalDays:    defaultCheckIntervalDays,
		EnableEmailAlerts:    true,
	}

	var emails string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&cfg.ServiceKmInterval, &cfg.ServiceMonthInterval, &cfg.CheckIntervalDays,
		&emails, &cfg.EnableEmailAlerts,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model.ThresholdConfig{}, fmt.Errorf("failed to get maintenance config: %w", err)
	}

	cfg.Recipients = parseRecipients(emails)
	if len(cfg.Recipients) == 0 && r.fallbackRecipient != "" {
		cfg.Recipients = []string{r.fallbackRecipient}
	}

	return cfg, nil
}

func parseRecipients(emails string) []string {
	seen := make(map[string]struct{})
	var recipients []string

	for _, e := range strings.Split(emails, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		recipients = append(recipients, e)
	}

	return recipients
}
