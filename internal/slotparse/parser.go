// Package slotparse приводит разнородные идентификаторы временных слотов
// к каноническому окну {start, end} в 24-часовом формате HH:MM.
//
// Клиенты исторически присылают слот в четырёх видах:
//   - компактный код секции: "m5", "a2", "e3" (буква - секция дня, цифра -
//     номер слота внутри секции, нумерация с единицы);
//   - диапазон: "14:00-15:00", "10:00 AM-11:00 AM", в том числе обрезанный
//     ("10:00 AM-");
//   - одиночное время: "14:00", "2:00 PM";
//   - идентификатор записи справочника (числовой или 24-символьный hex из
//     старого документного хранилища) - такие значения резолвятся через
//     репозиторий до обращения к этому пакету, сам пакет чистый.
//
// Прежний бэкенд разбирал всё это тремя расходящимися копиями одной логики;
// здесь они сведены в одну.
package slotparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

// Window каноническое окно слота
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// DefaultWindow окно по умолчанию для неразборчивых идентификаторов.
// Политика пути записи: не валить запрос из-за кривого слота, а взять
// фиксированное утреннее окно; проверка конфликтов дальше идёт по нему.
var DefaultWindow = Window{Start: "08:00", End: "09:00"}

// Базовые часы секций. Каноническая таблица: m1..m6 -> 06:00..11:00,
// a1..a6 -> 12:00..17:00, e1..e6 -> 18:00..23:00.
const (
	morningBaseHour   = 6
	afternoonBaseHour = 12
	eveningBaseHour   = 18
)

// SlotDurationMinutes длительность стандартного слота
const SlotDurationMinutes = 60

var (
	objectIDRe    = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	sectionCodeRe = regexp.MustCompile(`^[maeMAE][0-9]+$`)
)

// ErrUnparseable возвращается, когда идентификатор не подошёл ни под один формат
var ErrUnparseable = fmt.Errorf("slotparse: unparseable slot identifier")

// IsObjectID возвращает true для 24-символьного hex-идентификатора
// из старого документного хранилища
func IsObjectID(raw string) bool {
	return objectIDRe.MatchString(raw)
}

// IsNumericID возвращает true для числового идентификатора справочника
func IsNumericID(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := strconv.ParseInt(raw, 10, 64)
	return err == nil
}

// IsSectionCode возвращает true для компактного кода секции ("m5", "E3")
func IsSectionCode(raw string) bool {
	return sectionCodeRe.MatchString(raw)
}

// Parse разбирает идентификатор слота по порядку приоритета:
// код секции, затем диапазон, затем одиночное время.
// Идентификаторы справочника (IsObjectID / IsNumericID) сюда не относятся.
func Parse(raw string) (Window, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Window{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	if IsSectionCode(raw) {
		return ParseSection(raw)
	}

	if strings.Contains(raw, "-") {
		return ParseRange(raw)
	}

	start, err := ParseClock(raw)
	if err != nil {
		return Window{}, err
	}
	return windowFromStart(start)
}

// Normalize разбирает идентификатор, подставляя DefaultWindow при неудаче.
// Используется на пути записи: доступность важнее строгости.
func Normalize(raw string) Window {
	w, err := Parse(raw)
	if err != nil {
		return DefaultWindow
	}
	return w
}

// ParseSection разбирает компактный код секции.
// Буква выбирает базовый час, номер слота прибавляется с поправкой на
// нумерацию с единицы: m1 -> 06:00, a2 -> 13:00, e6 -> 23:00.
func ParseSection(raw string) (Window, error) {
	if !sectionCodeRe.MatchString(raw) {
		return Window{}, fmt.Errorf("%w: %q is not a section code", ErrUnparseable, raw)
	}

	var baseHour int
	switch strings.ToLower(raw[:1]) {
	case "m":
		baseHour = morningBaseHour
	case "a":
		baseHour = afternoonBaseHour
	case "e":
		baseHour = eveningBaseHour
	}

	slotNumber, err := strconv.Atoi(raw[1:])
	if err != nil || slotNumber < 1 {
		return Window{}, fmt.Errorf("%w: invalid slot number in %q", ErrUnparseable, raw)
	}

	startHour := (baseHour + slotNumber - 1) % 24
	start, err := types.NewTimeStringFromHourMinute(startHour, 0)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return windowFromStart(start)
}

// ParseRange разбирает диапазон "<start>-<end>". Разделение идёт по первому
// дефису. Пустая или отсутствующая правая часть (обрезанный "10:00 AM-")
// достраивается как start+1ч.
func ParseRange(raw string) (Window, error) {
	left, right, found := strings.Cut(raw, "-")
	if !found {
		return Window{}, fmt.Errorf("%w: %q is not a range", ErrUnparseable, raw)
	}

	start, err := ParseClock(strings.TrimSpace(left))
	if err != nil {
		return Window{}, err
	}

	right = strings.TrimSpace(right)
	if right == "" {
		return windowFromStart(start)
	}

	end, err := ParseClock(right)
	if err != nil {
		return Window{}, err
	}

	return Window{Start: start, End: end}, nil
}

// ParseClock разбирает одиночное время в 24-часовом ("14:00") или
// 12-часовом ("2:00 PM") формате в каноническое HH:MM.
// Правила 12-часовой конверсии: PM при часе <12 добавляет 12,
// "12:xx AM" - это 00:xx. Минуты по умолчанию "00".
func ParseClock(raw string) (types.TimeString, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty time", ErrUnparseable)
	}

	upper := strings.ToUpper(s)
	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")

	// Отрезаем суффикс AM/PM вместе с пробелами
	if isAM || isPM {
		upper = strings.ReplaceAll(upper, "AM", "")
		upper = strings.ReplaceAll(upper, "PM", "")
		s = strings.TrimSpace(upper)
	}

	hourPart := s
	minutePart := "00"
	if h, m, found := strings.Cut(s, ":"); found {
		hourPart = h
		if strings.TrimSpace(m) != "" {
			minutePart = strings.TrimSpace(m)
		}
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return "", fmt.Errorf("%w: invalid hour in %q", ErrUnparseable, raw)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: invalid minutes in %q", ErrUnparseable, raw)
	}

	if isPM && hour < 12 {
		hour += 12
	} else if isAM && hour == 12 {
		hour = 0
	}

	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: hour out of range in %q", ErrUnparseable, raw)
	}

	return types.NewTimeStringFromHourMinute(hour, minute)
}

// windowFromStart достраивает окно от времени начала: конец через час,
// переход за 23:00 оборачивается на 00:00
func windowFromStart(start types.TimeString) (Window, error) {
	end, err := start.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return Window{Start: start, End: end}, nil
}
