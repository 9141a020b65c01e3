package notification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/paviotti-fleet/monitor/internal/api/dto"
	"github.com/paviotti-fleet/monitor/internal/config"
	mocks "github.com/paviotti-fleet/monitor/internal/mocks/api/handlers/notification"
	"github.com/paviotti-fleet/monitor/internal/model"
	repo "github.com/paviotti-fleet/monitor/internal/repository/notification"
	svc "github.com/paviotti-fleet/monitor/internal/service/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotifService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocknotifService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Send_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.SendRequest{
		Type:       "vtv_expiring",
		EntityType: "vehicle",
		EntityID:   "vehicle-1",
		Message:    "VTV vence en 10 días",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/send", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Send(gomock.Any(), cfg.Retry, gomock.AssignableToTypeOf(svc.Payload{})).
		Return(svc.DispatchResult{Success: true, LogID: uuid.New()})

	handler.Send(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Send_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	// entityType outside the allowed set.
	body := []byte(`{"type":"vtv_expiring","entityType":"rocket","entityId":"x","message":"m"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/send", bytes.NewReader(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Send_DeliveryFailure(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := dto.SendRequest{
		Type:       "service_due",
		EntityType: "vehicle",
		EntityID:   "vehicle-2",
		Message:    "Mantenimiento requerido",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/send", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Send(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(svc.DispatchResult{Success: false, LogID: uuid.New(), Error: "connection refused"})

	handler.Send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_Webhook_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	body := []byte(`{"event":"repair_completed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", "abc123")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Receive(gomock.Any(), body, "abc123").
		Return(nil)

	handler.Webhook(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"received":true`)
}

func TestHandler_Webhook_MissingSignature(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/webhook", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Webhook_InvalidSignature(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	body := []byte(`{"event":"repair_completed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/webhook", bytes.NewReader(body))
	req.Header.Set("X-Signature", "deadbeef")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Receive(gomock.Any(), body, "deadbeef").
		Return(svc.ErrInvalidSignature)

	handler.Webhook(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		StatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.StatusSent, nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), model.StatusSent)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/not-a-uuid/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_GetStatus_NotFound(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String()+"/status", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		StatusByID(gomock.Any(), cfg.Retry, id).
		Return("", fmt.Errorf("get notification status: %w", repo.ErrLogNotFound))

	handler.GetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Logs_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/logs?limit=5&status=failed", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Logs(gomock.Any(), 5, "failed").
		Return([]model.NotificationLog{{ID: uuid.New(), Message: "m"}}, nil)

	handler.Logs(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Logs_DefaultLimit(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/logs", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Logs(gomock.Any(), defaultLogLimit, "").
		Return(nil, nil)

	handler.Logs(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "[]")
}

func TestHandler_Logs_InvalidLimit(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/logs?limit=abc", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Logs(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Retry_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/retry", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RetryFailed(gomock.Any(), cfg.Retry).
		Return(svc.RetryResult{Retried: 2, Succeeded: 1, Failed: 1}, nil)

	handler.Retry(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Stats_Error(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/stats", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Stats(gomock.Any()).
		Return(model.Stats{}, errors.New("db down"))

	handler.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}
