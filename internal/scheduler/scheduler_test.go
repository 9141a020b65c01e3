package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/paviotti-fleet/monitor/internal/alerts"
	mocks "github.com/paviotti-fleet/monitor/internal/mocks/scheduler"
	"github.com/paviotti-fleet/monitor/internal/model"
	notifsvc "github.com/paviotti-fleet/monitor/internal/service/notification"
)

func timePtr(t time.Time) *time.Time { return &t }

func setupScheduler(t *testing.T) (*Scheduler, *mocks.MockfleetRepository, *mocks.Mockdispatcher) {
	ctrl := gomock.NewController(t)
	fleetMock := mocks.NewMockfleetRepository(ctrl)
	dispatchMock := mocks.NewMockdispatcher(ctrl)

	sched, err := New(fleetMock, dispatchMock, retry.Strategy{}, Options{
		Timezone:  "America/Argentina/Buenos_Aires",
		CronSpecs: []string{"0 8 * * *"},
	})
	assert.NoError(t, err)

	return sched, fleetMock, dispatchMock
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New(nil, nil, retry.Strategy{}, Options{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load timezone")
}

func TestScheduler_RunOnce_CategoryOrder(t *testing.T) {
	sched, fleetMock, dispatchMock := setupScheduler(t)

	cfg := model.ThresholdConfig{ServiceKmInterval: 10000, ServiceMonthInterval: 6}
	vehicles := []model.Vehicle{{
		ID:        "vehicle-1",
		Plate:     "AB123CD",
		VTVExpiry: timePtr(time.Now().AddDate(0, 0, 10)),
	}}
	users := []model.User{{
		ID:                "user-1",
		Name:              "Juan",
		Active:            true,
		LicenseExpiration: timePtr(time.Now().AddDate(0, 0, -2)),
	}}

	fleetMock.EXPECT().GetThresholdConfig(gomock.Any()).Return(cfg, nil)
	fleetMock.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil)
	fleetMock.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	gomock.InOrder(
		dispatchMock.EXPECT().
			Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
			DoAndReturn(func(_ context.Context, _ retry.Strategy, f alerts.Finding, _ model.ThresholdConfig) notifsvc.DispatchResult {
				assert.Equal(t, alerts.TypeVTVExpiring, f.Type)
				assert.Equal(t, "vehicle-1", f.EntityID)
				return notifsvc.DispatchResult{Success: true}
			}),
		dispatchMock.EXPECT().
			Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
			DoAndReturn(func(_ context.Context, _ retry.Strategy, f alerts.Finding, _ model.ThresholdConfig) notifsvc.DispatchResult {
				assert.Equal(t, alerts.TypeLicenseExpiring, f.Type)
				assert.Equal(t, "user-1", f.EntityID)
				return notifsvc.DispatchResult{Success: true}
			}),
	)

	sched.RunOnce(context.Background())
}

func TestScheduler_RunOnce_ConfigErrorAborts(t *testing.T) {
	sched, fleetMock, _ := setupScheduler(t)

	// No list or dispatch expectations: a config failure must abort the run.
	fleetMock.EXPECT().GetThresholdConfig(gomock.Any()).Return(model.ThresholdConfig{}, errors.New("db down"))

	sched.RunOnce(context.Background())
}

func TestScheduler_RunOnce_VehicleListErrorSkipsVehicleChecks(t *testing.T) {
	sched, fleetMock, dispatchMock := setupScheduler(t)

	cfg := model.ThresholdConfig{}
	users := []model.User{{
		ID:                "user-1",
		Active:            true,
		LicenseExpiration: timePtr(time.Now().AddDate(0, 0, -1)),
	}}

	fleetMock.EXPECT().GetThresholdConfig(gomock.Any()).Return(cfg, nil)
	fleetMock.EXPECT().ListVehicles(gomock.Any()).Return(nil, errors.New("db down"))
	fleetMock.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	dispatchMock.EXPECT().
		Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
		Return(notifsvc.DispatchResult{Success: true})

	sched.RunOnce(context.Background())
}

func TestScheduler_RunOnce_PanicDoesNotStopRun(t *testing.T) {
	sched, fleetMock, dispatchMock := setupScheduler(t)

	cfg := model.ThresholdConfig{}
	vehicles := []model.Vehicle{
		{ID: "vehicle-1", Plate: "AA111AA", VTVExpiry: timePtr(time.Now().AddDate(0, 0, 5))},
		{ID: "vehicle-2", Plate: "BB222BB", VTVExpiry: timePtr(time.Now().AddDate(0, 0, 6))},
	}

	fleetMock.EXPECT().GetThresholdConfig(gomock.Any()).Return(cfg, nil)
	fleetMock.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil)
	fleetMock.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	first := dispatchMock.EXPECT().
		Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, f alerts.Finding, _ model.ThresholdConfig) notifsvc.DispatchResult {
			panic("bad record")
		})
	second := dispatchMock.EXPECT().
		Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, f alerts.Finding, _ model.ThresholdConfig) notifsvc.DispatchResult {
			assert.Equal(t, "vehicle-2", f.EntityID)
			return notifsvc.DispatchResult{Success: true}
		})
	gomock.InOrder(first, second)

	sched.RunOnce(context.Background())
}

func TestScheduler_RunOnce_DispatchFailureContinues(t *testing.T) {
	sched, fleetMock, dispatchMock := setupScheduler(t)

	cfg := model.ThresholdConfig{}
	vehicles := []model.Vehicle{
		{ID: "vehicle-1", Plate: "AA111AA", VTVExpiry: timePtr(time.Now().AddDate(0, 0, 5))},
		{ID: "vehicle-2", Plate: "BB222BB", VTVExpiry: timePtr(time.Now().AddDate(0, 0, 6))},
	}

	fleetMock.EXPECT().GetThresholdConfig(gomock.Any()).Return(cfg, nil)
	fleetMock.EXPECT().ListVehicles(gomock.Any()).Return(vehicles, nil)
	fleetMock.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	dispatchMock.EXPECT().
		Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
		Return(notifsvc.DispatchResult{Success: false, Error: "connection refused"})
	dispatchMock.EXPECT().
		Dispatch(gomock.Any(), retry.Strategy{}, gomock.Any(), cfg).
		Return(notifsvc.DispatchResult{Success: true})

	sched.RunOnce(context.Background())
}

func TestScheduler_StartAndStop(t *testing.T) {
	sched, _, _ := setupScheduler(t)

	err := sched.Start(context.Background())
	assert.NoError(t, err)

	sched.Stop()
}

func TestScheduler_Start_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	fleetMock := mocks.NewMockfleetRepository(ctrl)
	dispatchMock := mocks.NewMockdispatcher(ctrl)

	sched, err := New(fleetMock, dispatchMock, retry.Strategy{}, Options{
		Timezone:  "UTC",
		CronSpecs: []string{"not a cron spec"},
	})
	assert.NoError(t, err)

	err = sched.Start(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "register cron spec")
}
