package admin_list_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// date задаёт период из одного дня; startDate/endDate - произвольный период.
func ToServiceRequest(dateStr, startDateStr, endDateStr, statusStr, courtStr, phoneStr, includeCancelledStr string) (*models.AdminListRequest, error) {
	req := &models.AdminListRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startDateStr != "" {
			start, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, fmt.Errorf("invalid startDate: %w", err)
			}
			req.StartDate = &start
		}
		if endDateStr != "" {
			end, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, fmt.Errorf("invalid endDate: %w", err)
			}
			req.EndDate = &end
		}
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if courtStr != "" {
		court, err := strconv.Atoi(courtStr)
		if err != nil {
			return nil, fmt.Errorf("invalid courtNumber: %w", err)
		}
		req.CourtNumber = &court
	}

	if phoneStr != "" {
		req.PhoneNumber = &phoneStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
