package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/config"
	"github.com/oseikuffour/incident_dispatch_system/internal/dispatch"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	notification_mocks "github.com/oseikuffour/incident_dispatch_system/internal/notification/mocks"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
	"github.com/oseikuffour/incident_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	responders  *mocks.MockResponderRepository
	assignments *mocks.MockAssignmentRepository
	reports     *mocks.MockReportRepository
	publisher   *notification_mocks.MockPublisher
}

func newTestDispatchService(t *testing.T) (service.DispatchService, dispatchMocks) {
	ctrl := gomock.NewController(t)
	m := dispatchMocks{
		responders:  mocks.NewMockResponderRepository(ctrl),
		assignments: mocks.NewMockAssignmentRepository(ctrl),
		reports:     mocks.NewMockReportRepository(ctrl),
		publisher:   notification_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		DispatchLookupTimeout: 3 * time.Second,
	}

	svc := service.NewDispatchService(m.responders, m.assignments, m.reports, logger, cfg, m.publisher)
	return svc, m
}

func reportAt(lat, lon float64) *models.Report {
	return &models.Report{
		ID:        uuid.New(),
		UserID:    "user-1",
		Type:      "accident",
		Location:  "Ring Road",
		Severity:  "high",
		Latitude:  &lat,
		Longitude: &lon,
		Status:    models.ReportStatusSent,
	}
}

func directoryResponder(name string, serviceType models.ServiceType, lat, lon float64) models.Responder {
	return models.Responder{
		ID:          uuid.New(),
		Name:        name,
		ServiceType: serviceType,
		Phone:       "+233200000000",
		Email:       name + "@example.com",
		Latitude:    &lat,
		Longitude:   &lon,
		Available:   true,
		Approved:    true,
	}
}

func TestDispatchReport_AssignsNearestResponder(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)

	near := directoryResponder("near unit", models.ServicePolice, 5.6037, -0.1870)
	far := directoryResponder("far unit", models.ServicePolice, 6.6666, -1.6163)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServicePolice).
		Return([]models.Responder{far, near}, nil).
		Times(1)
	m.assignments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			a.ID = uuid.New()
			a.AssignedAt = time.Now()
			return nil
		}).
		Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServicePolice},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Empty(t, result.Unfulfilled)
	assert.False(t, result.Skipped)

	created := result.Created[0]
	assert.Equal(t, near.ID, created.ResponderID)
	assert.Equal(t, "near unit", created.ResponderName)
	assert.Equal(t, models.ServicePolice, created.ServiceType)
	assert.Equal(t, models.MethodAutomatic, created.Method)
	assert.Equal(t, models.AssignmentAssigned, created.Status)
	assert.Greater(t, created.DistanceKm, 0.0)
}

func TestDispatchReport_NoResponderAvailable(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServiceAmbulance).
		Return(nil, nil).
		Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServiceAmbulance},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Equal(t, []models.ServiceType{models.ServiceAmbulance}, result.Unfulfilled)
}

func TestDispatchReport_LookupFailureIsIsolated(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)

	unit := directoryResponder("police unit", models.ServicePolice, 5.6037, -0.1870)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServicePolice).
		Return([]models.Responder{unit}, nil).
		Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServiceAmbulance).
		Return(nil, errors.New("directory timeout")).
		Times(1)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServicePolice, models.ServiceAmbulance},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Equal(t, []models.ServiceType{models.ServiceAmbulance}, result.Unfulfilled)
}

func TestDispatchReport_NotificationFailureKeepsAssignment(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)

	unit := directoryResponder("police unit", models.ServicePolice, 5.6037, -0.1870)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServicePolice).
		Return([]models.Responder{unit}, nil).
		Times(1)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down")).
		Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServicePolice},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
}

func TestDispatchReport_PersistenceFailureIsFatal(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)

	unit := directoryResponder("police unit", models.ServicePolice, 5.6037, -0.1870)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().
		FindEligible(gomock.Any(), models.ServicePolice).
		Return([]models.Responder{unit}, nil).
		Times(1)
	m.assignments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed")).
		Times(1)

	_, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServicePolice},
	})

	require.Error(t, err)
}

func TestDispatchReport_MissingCoordinatesSkips(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := &models.Report{
		ID:     uuid.New(),
		Type:   "accident",
		Status: models.ReportStatusSent,
	}

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		ServiceTypes: []models.ServiceType{models.ServicePolice},
	})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Empty(t, result.Created)
}

func TestDispatchReport_ReportNotFound(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	reportID := uuid.New()

	m.reports.EXPECT().
		GetByID(ctx, reportID).
		Return(nil, service.ErrNotFound).
		Times(1)

	_, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     reportID,
		ServiceTypes: []models.ServiceType{models.ServicePolice},
	})

	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDispatchReport_ManualBypassesDirectory(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	report := reportAt(5.5560, -0.1969)
	responder := directoryResponder("tow truck", models.ServiceTowing, 5.6037, -0.1870)

	m.reports.EXPECT().GetByID(ctx, report.ID).Return(report, nil).Times(1)
	m.responders.EXPECT().GetByID(ctx, responder.ID).Return(&responder, nil).Times(1)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := svc.DispatchReport(ctx, service.DispatchRequest{
		ReportID:     report.ID,
		AssignedBy:   "admin-1",
		ResponderID:  &responder.ID,
		ServiceTypes: []models.ServiceType{models.ServiceTowing},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Equal(t, models.MethodManual, result.Created[0].Method)
	assert.Equal(t, responder.ID, result.Created[0].ResponderID)
}

func TestUpdateAssignmentStatus_CompletionResolvesReport(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	assignment := &models.Assignment{
		ID:          uuid.New(),
		ReportID:    uuid.New(),
		ResponderID: uuid.New(),
		ServiceType: models.ServiceAmbulance,
		Status:      models.AssignmentInProgress,
		AssignedAt:  time.Now().Add(-time.Hour),
	}

	m.assignments.EXPECT().GetByID(ctx, assignment.ID).Return(assignment, nil).Times(1)
	m.assignments.EXPECT().UpdateLifecycle(ctx, assignment).Return(nil).Times(1)
	m.reports.EXPECT().
		UpdateStatus(ctx, assignment.ReportID, models.ReportStatusResolved).
		Return(nil).
		Times(1)

	updated, err := svc.UpdateAssignmentStatus(ctx, assignment.ID, models.AssignmentCompleted, "", "great work")

	require.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "great work", updated.Feedback)
}

func TestUpdateAssignmentStatus_ResolutionFailureIsBestEffort(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	assignment := &models.Assignment{
		ID:       uuid.New(),
		ReportID: uuid.New(),
		Status:   models.AssignmentInProgress,
	}

	m.assignments.EXPECT().GetByID(ctx, assignment.ID).Return(assignment, nil).Times(1)
	m.assignments.EXPECT().UpdateLifecycle(ctx, assignment).Return(nil).Times(1)
	m.reports.EXPECT().
		UpdateStatus(ctx, assignment.ReportID, models.ReportStatusResolved).
		Return(errors.New("db down")).
		Times(1)

	_, err := svc.UpdateAssignmentStatus(ctx, assignment.ID, models.AssignmentCompleted, "", "")

	require.NoError(t, err)
}

func TestUpdateAssignmentStatus_InvalidTransition(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	assignment := &models.Assignment{
		ID:     uuid.New(),
		Status: models.AssignmentCompleted,
	}

	m.assignments.EXPECT().GetByID(ctx, assignment.ID).Return(assignment, nil).Times(1)

	_, err := svc.UpdateAssignmentStatus(ctx, assignment.ID, models.AssignmentInProgress, "", "")

	require.ErrorIs(t, err, dispatch.ErrInvalidTransition)
}

func TestListResponders_UnknownTypeRejected(t *testing.T) {
	svc, _ := newTestDispatchService(t)

	_, err := svc.ListResponders(context.Background(), "helicopter")

	require.Error(t, err)
}

func TestListResponders_FiltersByType(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	unit := directoryResponder("fire station", models.ServiceFire, 5.6037, -0.1870)

	m.responders.EXPECT().List(ctx, "fire").Return([]models.Responder{unit}, nil).Times(1)

	responders, err := svc.ListResponders(ctx, "fire")

	require.NoError(t, err)
	require.Len(t, responders, 1)
	assert.Equal(t, "fire station", responders[0].Name)
}
