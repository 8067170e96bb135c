package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/config"
	"github.com/oseikuffour/incident_dispatch_system/internal/dispatch"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
	"github.com/oseikuffour/incident_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	reports  *mocks.MockReportService
	dispatch *mocks.MockDispatchService
	buses    *mocks.MockBusService
}

func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		reports:  mocks.NewMockReportService(ctrl),
		dispatch: mocks.NewMockDispatchService(ctrl),
		buses:    mocks.NewMockBusService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys:              []string{"test-api-key"},
		HotSpotWindowMinutes: 60,
	}

	handler := NewHandler(m.reports, m.dispatch, m.buses, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestCreateReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lon := 5.5560, -0.1969
	reqBody := CreateReportRequest{
		UserID:      "user-1",
		Type:        "accident",
		Title:       "Collision on Ring Road",
		Description: "Two vehicles, one injured",
		Location:    "Ring Road Central",
		Latitude:    &lat,
		Longitude:   &lon,
		Severity:    "high",
	}

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, report *models.Report) error {
			report.ID = uuid.New()
			report.Status = models.ReportStatusSent
			report.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Collision on Ring Road", resp.Title)
	assert.Equal(t, models.ReportStatusSent, resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateReport_ValidationError(t *testing.T) {
	_, router := newTestHandler(t)
	// Missing required description and location.
	reqBody := CreateReportRequest{
		UserID: "user-1",
		Type:   "accident",
		Title:  "Collision",
	}

	w := makeRequest(router, "POST", "/api/v1/reports", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReport_InvalidJSON(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewReader([]byte("{not json")), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestGetReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	expected := &models.Report{
		ID:     reportID,
		Title:  "Collision on Ring Road",
		Status: models.ReportStatusSent,
	}

	m.reports.EXPECT().GetReport(gomock.Any(), reportID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+reportID.String(), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportID, resp.ID)
}

func TestGetReport_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/reports/not-a-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.reports.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: could not get report: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/"+reportID.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReports_PassesPagination(t *testing.T) {
	m, router := newTestHandler(t)

	m.reports.EXPECT().
		ListReports(gomock.Any(), "user-1", 2, 5).
		Return([]*models.Report{{ID: uuid.New()}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports?user_id=user-1&page=2&pageSize=5", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDispatchReport_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	assignment := &models.Assignment{
		ID:            uuid.New(),
		ReportID:      reportID,
		ResponderID:   uuid.New(),
		ResponderName: "near unit",
		ServiceType:   models.ServicePolice,
		Method:        models.MethodAutomatic,
		Status:        models.AssignmentAssigned,
		DistanceKm:    5.31,
		AssignedAt:    time.Now(),
	}

	m.dispatch.EXPECT().
		DispatchReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req service.DispatchRequest) (*service.DispatchResult, error) {
			assert.Equal(t, reportID, req.ReportID)
			assert.Equal(t, []models.ServiceType{models.ServicePolice, models.ServiceAmbulance}, req.ServiceTypes)
			return &service.DispatchResult{
				Created:     []*models.Assignment{assignment},
				Unfulfilled: []models.ServiceType{models.ServiceAmbulance},
			}, nil
		}).
		Times(1)

	reqBody := DispatchRequestDTO{
		ReportID:     reportID.String(),
		ServiceTypes: []string{"police", "ambulance"},
	}
	w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "near unit", resp.Assignments[0].ResponderName)
	assert.Equal(t, []string{"ambulance"}, resp.Unfulfilled)
	assert.False(t, resp.Skipped)
}

func TestDispatchReport_UnknownServiceType(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := DispatchRequestDTO{
		ReportID:     uuid.New().String(),
		ServiceTypes: []string{"helicopter"},
	}

	w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDispatchReport_ReportNotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.dispatch.EXPECT().
		DispatchReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: report: %w", service.ErrNotFound)).
		Times(1)

	reqBody := DispatchRequestDTO{
		ReportID:     uuid.New().String(),
		ServiceTypes: []string{"police"},
	}
	w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDispatchReport_ManualWithResponderID(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()
	responderID := uuid.New()

	m.dispatch.EXPECT().
		DispatchReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req service.DispatchRequest) (*service.DispatchResult, error) {
			require.NotNil(t, req.ResponderID)
			assert.Equal(t, responderID, *req.ResponderID)
			return &service.DispatchResult{}, nil
		}).
		Times(1)

	responderIDStr := responderID.String()
	reqBody := DispatchRequestDTO{
		ReportID:    reportID.String(),
		AssignedBy:  "admin-1",
		ResponderID: &responderIDStr,
	}
	w := makeRequest(router, "POST", "/api/v1/dispatch", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAssignments_ByReport(t *testing.T) {
	m, router := newTestHandler(t)
	reportID := uuid.New()

	m.dispatch.EXPECT().
		ListAssignmentsByReport(gomock.Any(), reportID).
		Return([]*models.Assignment{{ID: uuid.New(), ReportID: reportID}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/assignments?report_id="+reportID.String(), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAssignments_ByResponder(t *testing.T) {
	m, router := newTestHandler(t)
	responderID := uuid.New()

	m.dispatch.EXPECT().
		ListAssignmentsByResponder(gomock.Any(), responderID).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/assignments?responder_id="+responderID.String(), nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAssignments_MissingFilter(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/assignments", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "filter required")
}

func TestUpdateAssignmentStatus_Success(t *testing.T) {
	m, router := newTestHandler(t)
	assignmentID := uuid.New()
	now := time.Now()
	updated := &models.Assignment{
		ID:             assignmentID,
		Status:         models.AssignmentAcknowledged,
		AcknowledgedAt: &now,
	}

	m.dispatch.EXPECT().
		UpdateAssignmentStatus(gomock.Any(), assignmentID, models.AssignmentAcknowledged, "", "").
		Return(updated, nil).
		Times(1)

	reqBody := UpdateAssignmentStatusRequest{Status: "acknowledged"}
	w := makeRequest(router, "PUT", "/api/v1/assignments/"+assignmentID.String()+"/status", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(models.AssignmentAcknowledged), resp.Status)
	assert.NotNil(t, resp.AcknowledgedAt)
}

func TestUpdateAssignmentStatus_InvalidTransition(t *testing.T) {
	m, router := newTestHandler(t)
	assignmentID := uuid.New()

	m.dispatch.EXPECT().
		UpdateAssignmentStatus(gomock.Any(), assignmentID, models.AssignmentCompleted, "", "").
		Return(nil, fmt.Errorf("%w: completed -> completed", dispatch.ErrInvalidTransition)).
		Times(1)

	reqBody := UpdateAssignmentStatusRequest{Status: "completed"}
	w := makeRequest(router, "PUT", "/api/v1/assignments/"+assignmentID.String()+"/status", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateAssignmentStatus_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	assignmentID := uuid.New()

	m.dispatch.EXPECT().
		UpdateAssignmentStatus(gomock.Any(), assignmentID, models.AssignmentCancelled, "no longer needed", "").
		Return(nil, fmt.Errorf("service: assignment: %w", service.ErrNotFound)).
		Times(1)

	reqBody := UpdateAssignmentStatusRequest{Status: "cancelled", Notes: "no longer needed"}
	w := makeRequest(router, "PUT", "/api/v1/assignments/"+assignmentID.String()+"/status", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAssignmentStatus_UnknownStatus(t *testing.T) {
	_, router := newTestHandler(t)

	reqBody := UpdateAssignmentStatusRequest{Status: "paused"}
	w := makeRequest(router, "PUT", "/api/v1/assignments/"+uuid.New().String()+"/status", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListResponders_Success(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lon := 5.6037, -0.1870

	m.dispatch.EXPECT().
		ListResponders(gomock.Any(), "police").
		Return([]models.Responder{{
			ID:          uuid.New(),
			Name:        "Central Station",
			ServiceType: models.ServicePolice,
			Latitude:    &lat,
			Longitude:   &lon,
			Available:   true,
			Approved:    true,
		}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/responders?type=police", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ResponderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Central Station", resp[0].Name)
}

func TestCreateBusRequest_HotSpotMessage(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateBusRequestRequest{
		PassengerID:    "passenger-1",
		Location:       "Circle Interchange",
		Latitude:       5.5710,
		Longitude:      -0.1860,
		PassengerCount: 3,
	}

	m.buses.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, request *models.BusRequest) (bool, error) {
			request.ID = uuid.New()
			request.IsPeakHour = true
			request.Status = models.BusRequestPending
			request.CreatedAt = time.Now()
			return true, nil
		}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/bus-requests", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp CreateBusRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsHotSpot)
	assert.Contains(t, resp.Message, "High demand")
	require.NotNil(t, resp.Request)
	assert.True(t, resp.Request.IsPeakHour)
}

func TestCreateBusRequest_ValidationError(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := CreateBusRequestRequest{
		PassengerID: "passenger-1",
		// Missing location and coordinates.
	}

	w := makeRequest(router, "POST", "/api/v1/bus-requests", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBusRequests_PendingFeed(t *testing.T) {
	m, router := newTestHandler(t)

	m.buses.EXPECT().
		ListRequests(gomock.Any(), "", true).
		Return([]*models.BusRequest{{ID: uuid.New(), Status: models.BusRequestPending}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/bus-requests?pending=true", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcceptBusRequest_Success(t *testing.T) {
	m, router := newTestHandler(t)
	requestID := uuid.New()

	m.buses.EXPECT().
		AcceptBus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, acceptance *models.BusAcceptance) (*service.AcceptResult, error) {
			assert.Equal(t, requestID, acceptance.RequestID)
			assert.Equal(t, 20, acceptance.BusCapacity)
			return &service.AcceptResult{TotalAccepted: 20, Required: 30, Fulfilled: false}, nil
		}).
		Times(1)

	reqBody := AcceptBusRequest{
		DriverID:    "driver-1",
		DriverName:  "Kofi",
		DriverPhone: "+233200000000",
		BusNumber:   "GT-1234-20",
		BusCapacity: 20,
	}
	w := makeRequest(router, "PATCH", "/api/v1/bus-requests/"+requestID.String()+"/accept", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AcceptBusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.TotalAccepted)
	assert.Equal(t, 30, resp.Required)
	assert.False(t, resp.Fulfilled)
	assert.Contains(t, resp.Message, "20/30")
}

func TestAcceptBusRequest_AlreadyCompleted(t *testing.T) {
	m, router := newTestHandler(t)
	requestID := uuid.New()

	m.buses.EXPECT().
		AcceptBus(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not accept bus request: %w", service.ErrRequestClosed)).
		Times(1)

	reqBody := AcceptBusRequest{
		DriverID:    "driver-1",
		DriverName:  "Kofi",
		DriverPhone: "+233200000000",
		BusNumber:   "GT-1234-20",
		BusCapacity: 20,
	}
	w := makeRequest(router, "PATCH", "/api/v1/bus-requests/"+requestID.String()+"/accept", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already completed")
}

func TestAcceptBusRequest_NonPositiveCapacity(t *testing.T) {
	_, router := newTestHandler(t)

	reqBody := AcceptBusRequest{
		DriverID:    "driver-1",
		DriverName:  "Kofi",
		DriverPhone: "+233200000000",
		BusNumber:   "GT-1234-20",
		BusCapacity: 0,
	}
	w := makeRequest(router, "PATCH", "/api/v1/bus-requests/"+uuid.New().String()+"/accept", jsonBody(t, reqBody), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBusAcceptances_Success(t *testing.T) {
	m, router := newTestHandler(t)
	requestID := uuid.New()

	m.buses.EXPECT().
		ListAcceptances(gomock.Any(), requestID).
		Return([]*models.BusAcceptance{{ID: uuid.New(), RequestID: requestID, DriverName: "Kofi"}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/bus-requests/"+requestID.String()+"/acceptances", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []BusAcceptanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Kofi", resp[0].DriverName)
}

func TestListHotSpots_DefaultWindow(t *testing.T) {
	m, router := newTestHandler(t)

	m.buses.EXPECT().
		ListHotSpots(gomock.Any(), 60).
		Return([]models.HotSpot{{Location: "Circle Interchange", RequestCount: 6}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/bus-requests/hotspots", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HotSpotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 6, resp[0].RequestCount)
}

func TestListHotSpots_ServiceError(t *testing.T) {
	m, router := newTestHandler(t)

	m.buses.EXPECT().
		ListHotSpots(gomock.Any(), 30).
		Return(nil, errors.New("db down")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/bus-requests/hotspots?withinMinutes=30", nil, authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck_NoAPIKeyRequired(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSecuredRoutes_RequireAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/responders", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestSecuredRoutes_RejectInvalidKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/responders", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestSecuredRoutes_AcceptBearerToken(t *testing.T) {
	m, router := newTestHandler(t)

	m.dispatch.EXPECT().ListResponders(gomock.Any(), "").Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/responders", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}
