package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/paviotti-fleet/monitor/internal/api/dto"
	"github.com/paviotti-fleet/monitor/internal/api/respond"
	"github.com/paviotti-fleet/monitor/internal/config"
	"github.com/paviotti-fleet/monitor/internal/model"
	repo "github.com/paviotti-fleet/monitor/internal/repository/notification"
	svc "github.com/paviotti-fleet/monitor/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

const defaultLogLimit = 100

type notifService interface {
	Send(ctx context.Context, strategy retry.Strategy, payload svc.Payload) svc.DispatchResult
	Receive(ctx context.Context, body []byte, signature string) error
	StatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	RetryFailed(ctx context.Context, strategy retry.Strategy) (svc.RetryResult, error)
	Logs(ctx context.Context, limit int, status string) ([]model.NotificationLog, error)
	Stats(ctx context.Context) (model.Stats, error)
}

type Handler struct {
	service   notifService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s notifService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Send handles POST /api/notifications/send.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result := h.service.Send(c.Request.Context(), h.cfg.Retry, svc.Payload{
		Type:       req.Type,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Message:    req.Message,
		Data:       req.Data,
	})

	if !result.Success {
		respond.JSON(c.Writer, http.StatusInternalServerError, result)
		return
	}

	respond.OK(c.Writer, result)
}

// Webhook handles POST /api/notifications/webhook. The route carries no
// session auth; authenticity comes from the X-Signature HMAC header.
func (h *Handler) Webhook(c *ginext.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("failed to read request body"))
		return
	}

	signature := c.GetHeader("X-Signature")
	if signature == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("header X-Signature required"))
		return
	}

	if err := h.service.Receive(c.Request.Context(), body, signature); err != nil {
		zlog.Logger.Warn().Err(err).Msg("webhook rejected")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	respond.OK(c.Writer, map[string]bool{"received": true})
}

// GetStatus handles GET /api/notifications/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id"))
		return
	}

	status, err := h.service.StatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, repo.ErrLogNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]string{"status": status})
}

// Logs handles GET /api/notifications/logs.
func (h *Handler) Logs(c *ginext.Context) {
	limit := defaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	logs, err := h.service.Logs(c.Request.Context(), limit, c.Query("status"))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get notification logs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if logs == nil {
		logs = []model.NotificationLog{}
	}

	respond.OK(c.Writer, logs)
}

// Retry handles POST /api/notifications/retry.
func (h *Handler) Retry(c *ginext.Context) {
	result, err := h.service.RetryFailed(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to retry notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

// Stats handles GET /api/notifications/stats.
func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get notification stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}
