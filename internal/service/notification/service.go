package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/paviotti-fleet/monitor/internal/alerts"
	"github.com/paviotti-fleet/monitor/internal/model"
	"github.com/paviotti-fleet/monitor/pkg/email"
	"github.com/paviotti-fleet/monitor/pkg/external"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

// Source identifies this system in outbound envelopes.
const Source = "paviotti-fleet"

const unconfiguredResponse = "Sin sistema externo configurado. Notificación solo guardada en BD."

type logRepository interface {
	Create(context.Context, model.NotificationLog) (uuid.UUID, error)
	MarkSent(ctx context.Context, id uuid.UUID, response string) error
	MarkFailed(ctx context.Context, id uuid.UUID, response string) error
	GetStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	ListFailedForRetry(context.Context) ([]model.NotificationLog, error)
	List(ctx context.Context, limit int, status string) ([]model.NotificationLog, error)
	Stats(context.Context) (model.Stats, error)
}

type externalClient interface {
	Configured() bool
	URL() string
	Send(ctx context.Context, envelope any) (external.Response, error)
}

type emailGateway interface {
	Send(msg email.Message) bool
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Payload is one outbound notification as accepted by the dispatch API.
type Payload struct {
	Type       string         `json:"type"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
}

// envelope is the wire format POSTed to the external system.
type envelope struct {
	Payload
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// DispatchResult reports the outcome of one dispatch. Dispatch never
// returns an error to the caller; every outcome lands here so an
// evaluation run can keep going past individual failures.
type DispatchResult struct {
	Success bool      `json:"success"`
	LogID   uuid.UUID `json:"logId"`
	Error   string    `json:"error,omitempty"`
}

// RetryResult summarizes one retry batch.
type RetryResult struct {
	Retried   int `json:"retried"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Service is the notification core: it persists a log row per finding,
// delivers to the external system and the email channel, retries failed
// deliveries and records inbound webhooks.
type Service struct {
	repo          logRepository
	external      externalClient
	emails        emailGateway
	cache         cache
	webhookSecret string

	webhookHandlers map[string]WebhookHandler
}

// NewService wires the notification service.
func NewService(repo logRepository, ext externalClient, emails emailGateway, c cache, webhookSecret string) *Service {
	s := &Service{
		repo:          repo,
		external:      ext,
		emails:        emails,
		cache:         c,
		webhookSecret: webhookSecret,
	}
	s.webhookHandlers = defaultWebhookHandlers()

	return s
}

// Send creates a log row for the payload and attempts delivery to the
// external system. With no external endpoint configured the row is marked
// sent immediately: local logging is still useful, so that is a soft
// success, not a failure.
func (s *Service) Send(ctx context.Context, strategy retry.Strategy, payload Payload) DispatchResult {
	sentTo := model.SentToUnconfigured
	if s.external.Configured() {
		sentTo = s.external.URL()
	}

	log := model.NotificationLog{
		Type:       payload.Type,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Message:    payload.Message,
		SentTo:     sentTo,
		Status:     model.StatusPending,
	}

	id, err := s.repo.Create(ctx, log)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("type", payload.Type).Msg("failed to create notification log")
		return DispatchResult{Success: false, Error: fmt.Sprintf("create notification log: %v", err)}
	}

	s.cacheStatus(ctx, strategy, id, model.StatusPending)

	if !s.external.Configured() {
		if err := s.repo.MarkSent(ctx, id, unconfiguredResponse); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification log sent")
		}

		s.cacheStatus(ctx, strategy, id, model.StatusSent)
		zlog.Logger.Info().Str("type", payload.Type).Str("message", payload.Message).Msg("notification stored locally only")

		return DispatchResult{Success: true, LogID: id}
	}

	return s.deliver(ctx, strategy, id, payload)
}

// deliver POSTs the payload to the external system and records the outcome
// on the existing log row. Used by both first attempts and retries, which
// is what keeps the one-row-per-dispatch invariant: a retry never creates
// a second row.
func (s *Service) deliver(ctx context.Context, strategy retry.Strategy, id uuid.UUID, payload Payload) DispatchResult {
	env := envelope{
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Source:    Source,
	}

	resp, err := s.external.Send(ctx, env)
	if err != nil {
		failure, _ := json.Marshal(map[string]string{
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})

		if markErr := s.repo.MarkFailed(ctx, id, string(failure)); markErr != nil {
			zlog.Logger.Error().Err(markErr).Str("id", id.String()).Msg("failed to mark notification log failed")
		}

		s.cacheStatus(ctx, strategy, id, model.StatusFailed)
		zlog.Logger.Error().Err(err).Str("type", payload.Type).Msg("failed to deliver notification")

		return DispatchResult{Success: false, LogID: id, Error: err.Error()}
	}

	success, _ := json.Marshal(map[string]any{
		"status": resp.Status,
		"data":   resp.Data,
	})

	if err := s.repo.MarkSent(ctx, id, string(success)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification log sent")
	}

	s.cacheStatus(ctx, strategy, id, model.StatusSent)
	zlog.Logger.Info().Str("type", payload.Type).Str("message", payload.Message).Msg("notification delivered")

	return DispatchResult{Success: true, LogID: id}
}

// Dispatch sends one finding through every configured channel: the external
// system (via Send) and, when email alerts are enabled and recipients are
// configured, the email gateway. An email failure never affects the
// recorded delivery status; it is logged and swallowed.
func (s *Service) Dispatch(ctx context.Context, strategy retry.Strategy, f alerts.Finding, cfg model.ThresholdConfig) DispatchResult {
	result := s.Send(ctx, strategy, Payload{
		Type:       f.Type,
		EntityType: f.EntityType,
		EntityID:   f.EntityID,
		Message:    f.Message,
		Data:       f.Data,
	})

	if cfg.EnableEmailAlerts && len(cfg.Recipients) > 0 {
		if tpl, ok := templateFor(f); ok {
			sent := s.emails.Send(email.Message{To: cfg.Recipients, Subject: tpl.Subject, HTML: tpl.HTML})
			if !sent {
				zlog.Logger.Warn().Str("type", f.Type).Msg("alert email not sent")
			}
		}
	}

	return result
}

// RetryFailed re-drives a bounded batch of failed deliveries: at most ten
// rows with fewer than three recorded attempts. Only the original type,
// entity and message are resent; the data payload is not preserved across
// retries. Rows at three or more attempts are a soft dead-letter, still
// queryable but never retried again.
func (s *Service) RetryFailed(ctx context.Context, strategy retry.Strategy) (RetryResult, error) {
	failed, err := s.repo.ListFailedForRetry(ctx)
	if err != nil {
		return RetryResult{}, fmt.Errorf("list failed notifications: %w", err)
	}

	zlog.Logger.Info().Int("count", len(failed)).Msg("retrying failed notifications")

	result := RetryResult{Retried: len(failed)}
	for _, row := range failed {
		payload := Payload{
			Type:       row.Type,
			EntityType: row.EntityType,
			EntityID:   row.EntityID,
			Message:    row.Message,
		}

		if res := s.deliver(ctx, strategy, row.ID, payload); res.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	zlog.Logger.Info().Int("succeeded", result.Succeeded).Int("failed", result.Failed).Msg("retry batch completed")

	return result, nil
}

// StatusByID returns the delivery status of one log row, consulting the
// cache first and falling back to the database on a miss.
func (s *Service) StatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err == nil {
		return status, nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	status, err = s.repo.GetStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, strategy, id, status)

	return status, nil
}

// Logs returns notification log rows, newest first.
func (s *Service) Logs(ctx context.Context, limit int, status string) ([]model.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}

	logs, err := s.repo.List(ctx, limit, status)
	if err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}

	return logs, nil
}

// Stats returns aggregate delivery counts.
func (s *Service) Stats(ctx context.Context) (model.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return model.Stats{}, fmt.Errorf("get notification stats: %w", err)
	}

	return stats, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}

// templateFor picks the email template for a finding and fills it from the
// finding's data map.
func templateFor(f alerts.Finding) (email.Template, bool) {
	switch f.Type {
	case alerts.TypeVTVExpired, alerts.TypeVTVExpiringCritical, alerts.TypeVTVExpiring:
		return email.VTVAlert(email.VTVInput{
			Plate:           dataString(f.Data, "plate"),
			Brand:           dataString(f.Data, "brand"),
			Model:           dataString(f.Data, "model"),
			VTVExpiry:       dataTime(f.Data, "vtvExpiry"),
			DaysUntilExpiry: f.DaysRemaining,
			IsExpired:       f.Type == alerts.TypeVTVExpired,
		}), true
	case alerts.TypeLicenseExpiring:
		return email.LicenseAlert(email.LicenseInput{
			UserName:          dataString(f.Data, "userName"),
			UserEmail:         dataString(f.Data, "userEmail"),
			LicenseExpiration: dataTime(f.Data, "licenseExpiration"),
			DaysExpired:       dataInt(f.Data, "daysExpired"),
		}), true
	case alerts.TypeInsuranceExpired, alerts.TypeInsuranceExpiring:
		return email.InsuranceAlert(email.InsuranceInput{
			Plate:           dataString(f.Data, "plate"),
			Brand:           dataString(f.Data, "brand"),
			Model:           dataString(f.Data, "model"),
			InsuranceExpiry: dataTime(f.Data, "insuranceExpiry"),
			DaysUntilExpiry: f.DaysRemaining,
			IsExpired:       f.Type == alerts.TypeInsuranceExpired,
		}), true
	case alerts.TypeServiceDue:
		return email.MaintenanceAlert(email.MaintenanceInput{
			Plate:  dataString(f.Data, "plate"),
			Brand:  dataString(f.Data, "brand"),
			Model:  dataString(f.Data, "model"),
			Reason: dataString(f.Data, "reason"),
		}), true
	}

	return email.Template{}, false
}

func dataString(data map[string]any, key string) string {
	v, _ := data[key].(string)
	return v
}

func dataInt(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func dataTime(data map[string]any, key string) time.Time {
	t, _ := time.Parse(time.RFC3339, dataString(data, key))
	return t
}
