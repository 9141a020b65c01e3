package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/paviotti-fleet/monitor/internal/alerts"
	mocks "github.com/paviotti-fleet/monitor/internal/mocks/service/notification"
	"github.com/paviotti-fleet/monitor/internal/model"
	"github.com/paviotti-fleet/monitor/pkg/email"
	"github.com/paviotti-fleet/monitor/pkg/external"
)

func setupService(t *testing.T) (*Service, *mocks.MocklogRepository, *mocks.MockexternalClient, *mocks.MockemailGateway, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocklogRepository(ctrl)
	extMock := mocks.NewMockexternalClient(ctrl)
	emailMock := mocks.NewMockemailGateway(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, extMock, emailMock, cacheMock, "secret")
	return svc, repoMock, extMock, emailMock, cacheMock
}

func TestService_Send_Unconfigured(t *testing.T) {
	svc, repoMock, extMock, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	extMock.EXPECT().Configured().Return(false).Times(2)
	repoMock.EXPECT().Create(gomock.Any(), model.NotificationLog{
		Type:       "vtv_expiring",
		EntityType: "vehicle",
		EntityID:   "AB123CD",
		Message:    "VTV vence en 10 días",
		SentTo:     model.SentToUnconfigured,
		Status:     model.StatusPending,
	}).Return(id, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), id, unconfiguredResponse).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusSent).Return(nil)

	result := svc.Send(context.Background(), strategy, Payload{
		Type:       "vtv_expiring",
		EntityType: "vehicle",
		EntityID:   "AB123CD",
		Message:    "VTV vence en 10 días",
	})

	assert.True(t, result.Success)
	assert.Equal(t, id, result.LogID)
	assert.Empty(t, result.Error)
}

func TestService_Send_DeliverySuccess(t *testing.T) {
	svc, repoMock, extMock, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}
	endpoint := "https://external.example.com"

	extMock.EXPECT().Configured().Return(true).Times(2)
	extMock.EXPECT().URL().Return(endpoint)
	repoMock.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(model.NotificationLog{})).
		DoAndReturn(func(_ context.Context, log model.NotificationLog) (uuid.UUID, error) {
			assert.Equal(t, endpoint, log.SentTo)
			assert.Equal(t, model.StatusPending, log.Status)
			return id, nil
		})
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)
	extMock.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env any) (external.Response, error) {
			e, ok := env.(envelope)
			assert.True(t, ok)
			assert.Equal(t, Source, e.Source)
			assert.Equal(t, "vtv_expired", e.Type)
			return external.Response{Status: 200}, nil
		})
	repoMock.EXPECT().MarkSent(gomock.Any(), id, gomock.Any()).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusSent).Return(nil)

	result := svc.Send(context.Background(), strategy, Payload{
		Type:       "vtv_expired",
		EntityType: "vehicle",
		EntityID:   "AB123CD",
		Message:    "VTV VENCIDA hace 3 días",
	})

	assert.True(t, result.Success)
	assert.Equal(t, id, result.LogID)
}

func TestService_Send_DeliveryFailure(t *testing.T) {
	svc, repoMock, extMock, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	extMock.EXPECT().Configured().Return(true).Times(2)
	extMock.EXPECT().URL().Return("https://external.example.com")
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusPending).Return(nil)
	extMock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(external.Response{}, errors.New("connection refused"))
	repoMock.EXPECT().MarkFailed(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, response string) error {
			assert.Contains(t, response, "connection refused")
			assert.Contains(t, response, "timestamp")
			return nil
		})
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusFailed).Return(nil)

	result := svc.Send(context.Background(), strategy, Payload{Type: "service_due", EntityType: "vehicle", EntityID: "AB123CD"})

	assert.False(t, result.Success)
	assert.Equal(t, id, result.LogID)
	assert.Contains(t, result.Error, "connection refused")
}

func TestService_Send_CreateError(t *testing.T) {
	svc, repoMock, extMock, _, _ := setupService(t)

	extMock.EXPECT().Configured().Return(false)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

	result := svc.Send(context.Background(), retry.Strategy{}, Payload{Type: "vtv_expiring"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "db down")
}

func TestService_Dispatch_EmailEnabled(t *testing.T) {
	svc, repoMock, extMock, emailMock, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}
	cfg := model.ThresholdConfig{
		EnableEmailAlerts: true,
		Recipients:        []string{"flota@example.com"},
	}

	extMock.EXPECT().Configured().Return(false).Times(2)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), gomock.Any()).Return(nil).Times(2)
	repoMock.EXPECT().MarkSent(gomock.Any(), id, unconfiguredResponse).Return(nil)
	emailMock.EXPECT().Send(gomock.AssignableToTypeOf(email.Message{})).
		DoAndReturn(func(msg email.Message) bool {
			assert.Equal(t, cfg.Recipients, msg.To)
			assert.Contains(t, msg.Subject, "AB123CD")
			return true
		})

	result := svc.Dispatch(context.Background(), strategy, alerts.Finding{
		Type:          alerts.TypeVTVExpiring,
		EntityType:    alerts.EntityVehicle,
		EntityID:      "vehicle-1",
		DaysRemaining: 10,
		Message:       "VTV vence en 10 días",
		Data: map[string]any{
			"plate":     "AB123CD",
			"brand":     "Ford",
			"model":     "Ranger",
			"vtvExpiry": time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
		},
	}, cfg)

	assert.True(t, result.Success)
}

func TestService_Dispatch_EmailDisabled(t *testing.T) {
	svc, repoMock, extMock, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}
	cfg := model.ThresholdConfig{
		EnableEmailAlerts: false,
		Recipients:        []string{"flota@example.com"},
	}

	// The email gateway mock has no expectations: any call would fail the test.
	extMock.EXPECT().Configured().Return(false).Times(2)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), gomock.Any()).Return(nil).Times(2)
	repoMock.EXPECT().MarkSent(gomock.Any(), id, unconfiguredResponse).Return(nil)

	result := svc.Dispatch(context.Background(), strategy, alerts.Finding{
		Type:       alerts.TypeVTVExpiring,
		EntityType: alerts.EntityVehicle,
		EntityID:   "vehicle-1",
		Data:       map[string]any{"plate": "AB123CD"},
	}, cfg)

	assert.True(t, result.Success)
}

func TestService_RetryFailed_MixedOutcomes(t *testing.T) {
	svc, repoMock, extMock, _, cacheMock := setupService(t)

	strategy := retry.Strategy{}
	okID := uuid.New()
	badID := uuid.New()

	rows := []model.NotificationLog{
		{ID: okID, Type: "vtv_expiring", EntityType: "vehicle", EntityID: "v1", Message: "m1", RetryCount: 1},
		{ID: badID, Type: "service_due", EntityType: "vehicle", EntityID: "v2", Message: "m2", RetryCount: 2},
	}

	repoMock.EXPECT().ListFailedForRetry(gomock.Any()).Return(rows, nil)

	extMock.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env any) (external.Response, error) {
			e := env.(envelope)
			if e.EntityID == "v1" {
				return external.Response{Status: 200}, nil
			}
			return external.Response{}, errors.New("still down")
		}).Times(2)

	repoMock.EXPECT().MarkSent(gomock.Any(), okID, gomock.Any()).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, okID.String(), model.StatusSent).Return(nil)
	repoMock.EXPECT().MarkFailed(gomock.Any(), badID, gomock.Any()).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, badID.String(), model.StatusFailed).Return(nil)

	result, err := svc.RetryFailed(context.Background(), strategy)

	assert.NoError(t, err)
	assert.Equal(t, RetryResult{Retried: 2, Succeeded: 1, Failed: 1}, result)
}

func TestService_RetryFailed_ListError(t *testing.T) {
	svc, repoMock, _, _, _ := setupService(t)

	repoMock.EXPECT().ListFailedForRetry(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.RetryFailed(context.Background(), retry.Strategy{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list failed notifications")
}

func TestService_StatusByID_CacheHit(t *testing.T) {
	svc, _, _, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return(model.StatusPending, nil)

	status, err := svc.StatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
}

func TestService_StatusByID_CacheMiss(t *testing.T) {
	svc, repoMock, _, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetStatusByID(gomock.Any(), id).Return(model.StatusSent, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), model.StatusSent).Return(nil)

	status, err := svc.StatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_Logs_DefaultLimit(t *testing.T) {
	svc, repoMock, _, _, _ := setupService(t)

	logs := []model.NotificationLog{{ID: uuid.New(), Message: "m"}}
	repoMock.EXPECT().List(gomock.Any(), 100, "").Return(logs, nil)

	result, err := svc.Logs(context.Background(), 0, "")
	assert.NoError(t, err)
	assert.Equal(t, logs, result)
}

func TestService_Stats(t *testing.T) {
	svc, repoMock, _, _, _ := setupService(t)

	stats := model.Stats{Total: 5, Sent: 3, Failed: 1, Pending: 1}
	repoMock.EXPECT().Stats(gomock.Any()).Return(stats, nil)

	result, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stats, result)
}
