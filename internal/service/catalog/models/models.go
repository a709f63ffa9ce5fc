package models

import "github.com/m04kA/Eclipse-BookingService/internal/domain"

// CourtResponse карточка корта для клиентов
type CourtResponse struct {
	ID int64 `json:"id"`

	// CourtNumber в отображаемой нумерации
	CourtNumber int `json:"courtNumber"`

	Name         string  `json:"name"`
	CourtType    string  `json:"courtType"`
	Status       string  `json:"status"`
	PricePerHour float64 `json:"pricePerHour"`
	Bookable     bool    `json:"bookable"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// TimeSlotResponse слот справочника
type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Section   string `json:"section"`

	// Code компактный код слота ("m1", "a2", "e6") для старых клиентов
	Code string `json:"code,omitempty"`
}

// TimeSlotListResponse слоты, сгруппированные по секциям дня
type TimeSlotListResponse struct {
	Morning   []TimeSlotResponse `json:"morning"`
	Afternoon []TimeSlotResponse `json:"afternoon"`
	Evening   []TimeSlotResponse `json:"evening"`
}

// FromDomainCourt конвертирует domain модель корта в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:           c.ID,
		CourtNumber:  domain.DisplayCourtNumber(c.CourtNumber),
		Name:         c.Name,
		CourtType:    string(c.CourtType),
		Status:       string(c.Status),
		PricePerHour: c.PricePerHour,
		Bookable:     c.IsBookable(),
	}
}

// FromDomainCourtList конвертирует список кортов в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{Courts: []CourtResponse{}}
	for _, court := range courts {
		if dto := FromDomainCourt(court); dto != nil {
			resp.Courts = append(resp.Courts, *dto)
		}
	}
	return resp
}

// FromDomainTimeSlot конвертирует слот справочника в DTO
func FromDomainTimeSlot(s *domain.TimeSlot, code string) TimeSlotResponse {
	return TimeSlotResponse{
		ID:        s.ID,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Section:   string(s.Section),
		Code:      code,
	}
}
