package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров:
// spaceId, staffId, createdBy, startDate, endDate, status, includeCancelled
func ToServiceRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	spaceID, err := handlers.QueryInt64(r, "spaceId")
	if err != nil {
		return nil, err
	}
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		return nil, err
	}
	createdBy, err := handlers.QueryInt64(r, "createdBy")
	if err != nil {
		return nil, err
	}
	startDate, err := handlers.QueryDate(r, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := handlers.QueryDate(r, "endDate")
	if err != nil {
		return nil, err
	}
	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		return nil, err
	}

	return &models.ListBookingsRequest{
		SpaceID:          spaceID,
		StaffID:          staffID,
		CreatedBy:        createdBy,
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           handlers.QueryString(r, "status"),
		IncludeCancelled: includeCancelled,
	}, nil
}
