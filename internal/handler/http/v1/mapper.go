package v1

import (
	"fmt"

	"github.com/oseikuffour/incident_dispatch_system/internal/models"
	"github.com/oseikuffour/incident_dispatch_system/internal/service"
)

// DTOToReportModel converts the intake DTO into the domain model
func DTOToReportModel(dto CreateReportRequest) *models.Report {
	return &models.Report{
		UserID:              dto.UserID,
		Type:                dto.Type,
		Title:               dto.Title,
		Description:         dto.Description,
		Location:            dto.Location,
		Latitude:            dto.Latitude,
		Longitude:           dto.Longitude,
		Severity:            dto.Severity,
		DriverLicenseNumber: dto.DriverLicenseNumber,
		VehicleNumber:       dto.VehicleNumber,
		BusNumber:           dto.BusNumber,
		RequestTowing:       dto.RequestTowing,
		RequestEmergency:    dto.RequestEmergency,
		ImageURL:            dto.ImageURL,
	}
}

// ModelToReportResponse converts a report model into the response DTO
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                  model.ID,
		UserID:              model.UserID,
		Type:                model.Type,
		Title:               model.Title,
		Description:         model.Description,
		Location:            model.Location,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Severity:            model.Severity,
		DriverLicenseNumber: model.DriverLicenseNumber,
		VehicleNumber:       model.VehicleNumber,
		BusNumber:           model.BusNumber,
		RequestTowing:       model.RequestTowing,
		RequestEmergency:    model.RequestEmergency,
		ImageURL:            model.ImageURL,
		Status:              model.Status,
		CreatedAt:           model.CreatedAt,
	}
}

// ModelsToReportResponses converts a slice of report models
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToAssignmentResponse converts an assignment model into the response DTO
func ModelToAssignmentResponse(model *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:             model.ID,
		ReportID:       model.ReportID,
		ResponderID:    model.ResponderID,
		ResponderName:  model.ResponderName,
		ServiceType:    string(model.ServiceType),
		Method:         model.Method,
		Status:         string(model.Status),
		DistanceKm:     model.DistanceKm,
		AssignedAt:     model.AssignedAt,
		AcknowledgedAt: model.AcknowledgedAt,
		CompletedAt:    model.CompletedAt,
		Notes:          model.Notes,
		Feedback:       model.Feedback,
	}
}

// ModelsToAssignmentResponses converts a slice of assignment models
func ModelsToAssignmentResponses(assignments []*models.Assignment) []*AssignmentResponse {
	responses := make([]*AssignmentResponse, len(assignments))
	for i, model := range assignments {
		responses[i] = ModelToAssignmentResponse(model)
	}
	return responses
}

// ResultToDispatchResponse converts a dispatch result into the response DTO
func ResultToDispatchResponse(result *service.DispatchResult) *DispatchResponse {
	unfulfilled := make([]string, len(result.Unfulfilled))
	for i, t := range result.Unfulfilled {
		unfulfilled[i] = string(t)
	}
	return &DispatchResponse{
		Assignments: ModelsToAssignmentResponses(result.Created),
		Unfulfilled: unfulfilled,
		Skipped:     result.Skipped,
	}
}

// DTOToBusRequestModel converts the bus intake DTO into the domain model
func DTOToBusRequestModel(dto CreateBusRequestRequest) *models.BusRequest {
	return &models.BusRequest{
		PassengerID:    dto.PassengerID,
		Location:       dto.Location,
		Latitude:       dto.Latitude,
		Longitude:      dto.Longitude,
		Destination:    dto.Destination,
		PassengerCount: dto.PassengerCount,
	}
}

// ModelToBusRequestResponse converts a bus request model into the response DTO
func ModelToBusRequestResponse(model *models.BusRequest) *BusRequestResponse {
	return &BusRequestResponse{
		ID:                    model.ID,
		PassengerID:           model.PassengerID,
		Location:              model.Location,
		Latitude:              model.Latitude,
		Longitude:             model.Longitude,
		Destination:           model.Destination,
		PassengerCount:        model.PassengerCount,
		IsPeakHour:            model.IsPeakHour,
		TotalCapacityAccepted: model.TotalCapacityAccepted,
		CapacityFulfilled:     model.CapacityFulfilled,
		Status:                model.Status,
		CreatedAt:             model.CreatedAt,
	}
}

// ModelsToBusRequestResponses converts a slice of bus request models
func ModelsToBusRequestResponses(requests []*models.BusRequest) []*BusRequestResponse {
	responses := make([]*BusRequestResponse, len(requests))
	for i, model := range requests {
		responses[i] = ModelToBusRequestResponse(model)
	}
	return responses
}

// ModelsToBusAcceptanceResponses converts the acceptance ledger
func ModelsToBusAcceptanceResponses(acceptances []*models.BusAcceptance) []*BusAcceptanceResponse {
	responses := make([]*BusAcceptanceResponse, len(acceptances))
	for i, model := range acceptances {
		responses[i] = &BusAcceptanceResponse{
			ID:          model.ID,
			RequestID:   model.RequestID,
			DriverID:    model.DriverID,
			DriverName:  model.DriverName,
			DriverPhone: model.DriverPhone,
			BusNumber:   model.BusNumber,
			BusCapacity: model.BusCapacity,
			AcceptedAt:  model.AcceptedAt,
		}
	}
	return responses
}

// ModelsToHotSpotResponses converts detected clusters
func ModelsToHotSpotResponses(hotSpots []models.HotSpot) []*HotSpotResponse {
	responses := make([]*HotSpotResponse, len(hotSpots))
	for i, spot := range hotSpots {
		responses[i] = &HotSpotResponse{
			Location:     spot.Location,
			Latitude:     spot.Latitude,
			Longitude:    spot.Longitude,
			RequestCount: spot.RequestCount,
		}
	}
	return responses
}

// ModelsToResponderResponses converts directory snapshots
func ModelsToResponderResponses(responders []models.Responder) []*ResponderResponse {
	responses := make([]*ResponderResponse, len(responders))
	for i := range responders {
		r := &responders[i]
		responses[i] = &ResponderResponse{
			ID:            r.ID,
			Name:          r.Name,
			ServiceType:   string(r.ServiceType),
			ContactPerson: r.ContactPerson,
			Phone:         r.Phone,
			Email:         r.Email,
			Address:       r.Address,
			Latitude:      r.Latitude,
			Longitude:     r.Longitude,
			Available:     r.Available,
			Approved:      r.Approved,
		}
	}
	return responses
}

// AcceptanceMessage phrases the "X/Y accepted" outcome for the caller
func AcceptanceMessage(result *service.AcceptResult) string {
	if result.Fulfilled {
		return "Request fully accepted"
	}
	return fmt.Sprintf("Partial acceptance recorded (%d/%d)", result.TotalAccepted, result.Required)
}
