package notification

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/paviotti-fleet/monitor/internal/model"
)

// ErrInvalidSignature rejects a webhook whose X-Signature header is absent
// or does not match the request body.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Webhook event names understood by the built-in router.
const (
	EventRepairCompleted     = "repair_completed"
	EventInspectionReminder  = "inspection_reminder"
	EventPaymentConfirmation = "payment_confirmation"
)

// WebhookHandler processes one authenticated inbound event. Handlers run
// after the event has been recorded; they are an extension point and the
// built-in ones perform no further mutation.
type WebhookHandler func(ctx context.Context, payload map[string]any)

// HandleEvent registers or replaces the handler for an event name. Not safe
// for concurrent use with Receive; register handlers during wiring.
func (s *Service) HandleEvent(event string, h WebhookHandler) {
	s.webhookHandlers[event] = h
}

// Receive authenticates and records one inbound webhook, then routes it.
//
// The HMAC-SHA256 signature is verified against the raw request body bytes
// exactly as received; the payload is never re-serialized before signing,
// so the producer's JSON key ordering cannot cause a mismatch. A rejected
// signature short-circuits before anything is persisted.
func (s *Service) Receive(ctx context.Context, body []byte, signature string) error {
	if !s.verifySignature(body, signature) {
		return ErrInvalidSignature
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("invalid webhook payload: %w", err)
	}

	event := webhookEvent(payload)

	entityType := stringOr(payload, "entityType", "external")
	entityID := stringOr(payload, "entityId", stringOr(payload, "id", "unknown"))
	message := stringOr(payload, "message", fmt.Sprintf("Webhook: %s", event))

	log := model.NotificationLog{
		Type:       "webhook_received",
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		SentTo:     model.SentToIncomingWebhook,
		Status:     model.StatusReceived,
		Response:   string(body),
	}

	if _, err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("record webhook: %w", err)
	}

	zlog.Logger.Info().Str("event", event).Str("entityId", entityID).Msg("webhook received")

	if handler, ok := s.webhookHandlers[event]; ok {
		handler(ctx, payload)
	} else {
		zlog.Logger.Info().Str("event", event).Msg("unhandled webhook event, ignored")
	}

	return nil
}

// verifySignature compares the hex-encoded HMAC-SHA256 of the body against
// the provided signature in constant time.
func (s *Service) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)

	return hmac.Equal(mac.Sum(nil), provided)
}

func webhookEvent(payload map[string]any) string {
	if e := stringOr(payload, "event", ""); e != "" {
		return e
	}
	return stringOr(payload, "type", "evento desconocido")
}

func stringOr(payload map[string]any, key, fallback string) string {
	if v, ok := payload[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func defaultWebhookHandlers() map[string]WebhookHandler {
	return map[string]WebhookHandler{
		EventRepairCompleted: func(ctx context.Context, payload map[string]any) {
			zlog.Logger.Info().Str("vehicleId", stringOr(payload, "vehicleId", "")).Msg("repair completed")
		},
		EventInspectionReminder: func(ctx context.Context, payload map[string]any) {
			zlog.Logger.Info().Msg("inspection reminder received")
		},
		EventPaymentConfirmation: func(ctx context.Context, payload map[string]any) {
			zlog.Logger.Info().Msg("payment confirmation received")
		},
	}
}
