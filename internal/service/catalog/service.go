package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	"github.com/m04kA/Eclipse-BookingService/internal/service/catalog/models"
)

// Service сервис справочников: корты и временные слоты
type Service struct {
	courtRepo    CourtRepository
	timeSlotRepo TimeSlotRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(courtRepo CourtRepository, timeSlotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		courtRepo:    courtRepo,
		timeSlotRepo: timeSlotRepo,
		logger:       logger,
	}
}

// ListCourts возвращает активные корты в отображаемой нумерации
func (s *Service) ListCourts(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.courtRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListCourts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCourts: fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// ListTimeSlots возвращает активные слоты, сгруппированные по секциям дня.
// Компактный код слота ("m1", "a2") - позиция внутри секции по порядку
// времени начала, нумерация с единицы.
func (s *Service) ListTimeSlots(ctx context.Context) (*models.TimeSlotListResponse, error) {
	slots, err := s.timeSlotRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListTimeSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTimeSlots - repository error: %v", ErrInternal, err)
	}

	resp := &models.TimeSlotListResponse{
		Morning:   []models.TimeSlotResponse{},
		Afternoon: []models.TimeSlotResponse{},
		Evening:   []models.TimeSlotResponse{},
	}

	// ListActive отдаёт слоты по возрастанию времени начала, позиция в
	// секции считается по этому порядку
	counters := map[domain.Section]int{}

	for _, slot := range slots {
		counters[slot.Section]++
		code := sectionPrefix(slot.Section) + strconv.Itoa(counters[slot.Section])
		dto := models.FromDomainTimeSlot(slot, code)

		switch slot.Section {
		case domain.SectionMorning:
			resp.Morning = append(resp.Morning, dto)
		case domain.SectionAfternoon:
			resp.Afternoon = append(resp.Afternoon, dto)
		case domain.SectionEvening:
			resp.Evening = append(resp.Evening, dto)
		}
	}

	s.logger.Info("ListTimeSlots: fetched %d slots", len(slots))
	return resp, nil
}

func sectionPrefix(section domain.Section) string {
	switch section {
	case domain.SectionMorning:
		return "m"
	case domain.SectionAfternoon:
		return "a"
	case domain.SectionEvening:
		return "e"
	}
	return ""
}
