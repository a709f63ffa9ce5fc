package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/Eclipse-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствующие обязательные поля собираются в один список, чтобы клиент
// увидел все проблемы сразу.
func validateRequest(req *Request) error {
	missing := make([]string, 0)

	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if req.CourtNumber == 0 {
		missing = append(missing, "courtNumber")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.SlotID) == "" {
		missing = append(missing, "timeSlot")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long (max %d)", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// clampPlayers приводит число игроков к допустимому диапазону.
// Ноль означает "не указано" и заменяется значением по умолчанию.
func clampPlayers(n int) int {
	if n == 0 {
		return domain.DefaultPlayers
	}
	if n < domain.MinPlayers {
		return domain.MinPlayers
	}
	if n > domain.MaxPlayers {
		return domain.MaxPlayers
	}
	return n
}
