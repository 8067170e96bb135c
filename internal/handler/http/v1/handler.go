package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oseikuffour/incident_dispatch_system/internal/config"
	"github.com/oseikuffour/incident_dispatch_system/internal/dispatch"
	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService   service.ReportService
	dispatchService service.DispatchService
	busService      service.BusService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	reportService service.ReportService,
	dispatchService service.DispatchService,
	busService service.BusService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		reportService:   reportService,
		dispatchService: dispatchService,
		busService:      busService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary File a new incident report
// @Description Create a new incident report. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToReportModel(input)
	if err := h.reportService.CreateReport(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(model))
}

// @Summary List incident reports
// @Description Get a paginated list of reports, optionally scoped to a user. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string false "Scope to one user"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	reports, err := h.reportService.ListReports(c.Request.Context(), c.Query("user_id"), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Description Get a single incident report. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Dispatch responders for a report
// @Description Assign the nearest eligible responder for each requested service type. A responder_id switches to manual dispatch. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body DispatchRequestDTO true "Dispatch request"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report or responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch [post]
func (h *Handler) dispatchReport(c *gin.Context) {
	var input DispatchRequestDTO
	log := h.logger.WithField("method", "dispatchReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reportID, err := uuid.Parse(input.ReportID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}

	serviceTypes := make([]models.ServiceType, 0, len(input.ServiceTypes))
	for _, raw := range input.ServiceTypes {
		serviceType, err := models.ParseServiceType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serviceTypes = append(serviceTypes, serviceType)
	}

	req := service.DispatchRequest{
		ReportID:     reportID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		ServiceTypes: serviceTypes,
		AssignedBy:   input.AssignedBy,
	}
	if input.ResponderID != nil {
		responderID, err := uuid.Parse(*input.ResponderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
			return
		}
		req.ResponderID = &responderID
	}

	result, err := h.dispatchService.DispatchReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.WithError(err).Warn("Dispatch target not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "report or responder not found"})
			return
		}
		log.WithError(err).Error("Failed to dispatch report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ResultToDispatchResponse(result))
}

// @Summary List assignments
// @Description Get assignments filtered by report or responder. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report_id query string false "Report ID"
// @Param responder_id query string false "Responder ID"
// @Success 200 {array} AssignmentResponse
// @Failure 400 {object} map[string]string "Missing or invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments [get]
func (h *Handler) listAssignments(c *gin.Context) {
	log := h.logger.WithField("method", "listAssignments")

	var (
		assignments []*models.Assignment
		err         error
	)
	switch {
	case c.Query("report_id") != "":
		var reportID uuid.UUID
		reportID, err = uuid.Parse(c.Query("report_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
			return
		}
		assignments, err = h.dispatchService.ListAssignmentsByReport(c.Request.Context(), reportID)
	case c.Query("responder_id") != "":
		var responderID uuid.UUID
		responderID, err = uuid.Parse(c.Query("responder_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
			return
		}
		assignments, err = h.dispatchService.ListAssignmentsByResponder(c.Request.Context(), responderID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_id or responder_id filter required"})
		return
	}

	if err != nil {
		log.WithError(err).Error("Failed to list assignments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAssignmentResponses(assignments))
}

// @Summary Update assignment status
// @Description Run one lifecycle transition on an assignment. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Assignment ID"
// @Param update body UpdateAssignmentStatusRequest true "Status update request"
// @Success 200 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Assignment not found"
// @Failure 409 {object} map[string]string "Stale or invalid transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /assignments/{id}/status [put]
func (h *Handler) updateAssignmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}
	log := h.logger.WithField("method", "updateAssignmentStatus").WithField("id", id)

	var input UpdateAssignmentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseAssignmentStatus(input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.dispatchService.UpdateAssignmentStatus(c.Request.Context(), id, status, input.Notes, input.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		case errors.Is(err, dispatch.ErrInvalidTransition):
			// Distinct from validation errors so callers can show
			// "already completed" style messaging.
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("Failed to update assignment status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToAssignmentResponse(assignment))
}

// @Summary List responders
// @Description Get directory snapshots, optionally filtered by service type. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Service type filter"
// @Success 200 {array} ResponderResponse
// @Failure 400 {object} map[string]string "Unknown service type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	log := h.logger.WithField("method", "listResponders")

	responders, err := h.dispatchService.ListResponders(c.Request.Context(), c.Query("type"))
	if err != nil {
		log.WithError(err).Warn("Failed to list responders from service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ModelsToResponderResponses(responders))
}

// @Summary Request a bus
// @Description Create a new bus request; the response reports whether the pickup area is a current hot spot. Requires API key.
// @Tags Buses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateBusRequestRequest true "Bus request creation request"
// @Success 201 {object} CreateBusRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bus-requests [post]
func (h *Handler) createBusRequest(c *gin.Context) {
	var input CreateBusRequestRequest
	log := h.logger.WithField("method", "createBusRequest")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBusRequestModel(input)
	isHotSpot, err := h.busService.CreateRequest(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to create bus request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	message := "Bus request submitted"
	if isHotSpot {
		message = "High demand area - drivers will be notified"
	}
	c.JSON(http.StatusCreated, CreateBusRequestResponse{
		Request:   ModelToBusRequestResponse(model),
		IsHotSpot: isHotSpot,
		Message:   message,
	})
}

// @Summary List bus requests
// @Description Get bus requests by passenger, the pending driver feed, or all of them. Requires API key.
// @Tags Buses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param passenger_id query string false "Scope to one passenger"
// @Param pending query bool false "Pending driver feed only"
// @Success 200 {array} BusRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bus-requests [get]
func (h *Handler) listBusRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listBusRequests")
	pendingOnly := c.Query("pending") == "true"

	requests, err := h.busService.ListRequests(c.Request.Context(), c.Query("passenger_id"), pendingOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list bus requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBusRequestResponses(requests))
}

// @Summary Accept a bus request
// @Description Record one driver's capacity pledge against a request. Over-capacity acceptances are recorded, not rejected. Requires API key.
// @Tags Buses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Bus request ID"
// @Param acceptance body AcceptBusRequest true "Acceptance request"
// @Success 200 {object} AcceptBusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bus request not found"
// @Failure 409 {object} map[string]string "Bus request already completed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bus-requests/{id}/accept [patch]
func (h *Handler) acceptBusRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bus request ID"})
		return
	}
	log := h.logger.WithField("method", "acceptBusRequest").WithField("id", id)

	var input AcceptBusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acceptance := &models.BusAcceptance{
		RequestID:   id,
		DriverID:    input.DriverID,
		DriverName:  input.DriverName,
		DriverPhone: input.DriverPhone,
		BusNumber:   input.BusNumber,
		BusCapacity: input.BusCapacity,
	}

	result, err := h.busService.AcceptBus(c.Request.Context(), acceptance)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "bus request not found"})
		case errors.Is(err, service.ErrRequestClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "bus request already completed"})
		default:
			log.WithError(err).Error("Failed to accept bus request in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, AcceptBusResponse{
		TotalAccepted: result.TotalAccepted,
		Required:      result.Required,
		Fulfilled:     result.Fulfilled,
		Message:       AcceptanceMessage(result),
	})
}

// @Summary List acceptances for a bus request
// @Description Get the capacity ledger of one bus request. Requires API key.
// @Tags Buses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Bus request ID"
// @Success 200 {array} BusAcceptanceResponse
// @Failure 400 {object} map[string]string "Invalid bus request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bus-requests/{id}/acceptances [get]
func (h *Handler) listBusAcceptances(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bus request ID"})
		return
	}
	log := h.logger.WithField("method", "listBusAcceptances").WithField("id", id)

	acceptances, err := h.busService.ListAcceptances(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list acceptances from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBusAcceptanceResponses(acceptances))
}

// @Summary List hot spots
// @Description Get geographic clusters of unmet peak-hour bus demand within the time window. Requires API key.
// @Tags Buses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param withinMinutes query int false "Rolling window in minutes" default(60)
// @Success 200 {array} HotSpotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /bus-requests/hotspots [get]
func (h *Handler) listHotSpots(c *gin.Context) {
	log := h.logger.WithField("method", "listHotSpots")
	withinMinutes, _ := strconv.Atoi(c.DefaultQuery("withinMinutes", "60"))

	hotSpots, err := h.busService.ListHotSpots(c.Request.Context(), withinMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to list hot spots from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToHotSpotResponses(hotSpots))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
