package domain

import (
	"time"

	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// Section секция дня для слотов и компактных кодов (m/a/e)
type Section string

const (
	SectionMorning   Section = "morning"
	SectionAfternoon Section = "afternoon"
	SectionEvening   Section = "evening"
)

// TimeSlot часовой слот из справочника.
// LegacyID - 24-символьный hex-идентификатор из прежнего документного
// хранилища; старые клиенты всё ещё присылают его вместо числового ID.
type TimeSlot struct {
	ID        int64
	LegacyID  *string
	StartTime types.TimeString
	// EndTime пустой у специальных "незакрытых" слотов (например, Midnight)
	EndTime   types.TimeString
	Section   Section
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEnd возвращает true, если у слота задано время окончания
func (s *TimeSlot) HasEnd() bool {
	return !s.EndTime.IsZero()
}
