package catalog

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Policy параметры генерации слотов
type Policy struct {
	HorizonDays     int    // количество дней горизонта
	DayStartHour    int    // час начала рабочего дня (включительно)
	DayEndHour      int    // час конца рабочего дня (не включается)
	IntervalMinutes int    // шаг слотов в минутах
	WeekStart       string // domain.WeekStartToday или domain.WeekStartMonday
}

// DefaultPolicy возвращает политику по умолчанию:
// скользящий горизонт 7 дней с сегодняшнего дня, 09:00-17:00, шаг 30 минут.
func DefaultPolicy() Policy {
	return Policy{
		HorizonDays:     domain.DefaultHorizonDays,
		DayStartHour:    domain.DefaultDayStartHour,
		DayEndHour:      domain.DefaultDayEndHour,
		IntervalMinutes: domain.DefaultIntervalMinutes,
		WeekStart:       domain.WeekStartToday,
	}
}

// Generate генерирует упорядоченную последовательность слотов для горизонта.
// Чистая функция от reference и policy: без случайности и побочных эффектов,
// повторный вызов с теми же аргументами дает идентичный результат.
func Generate(reference time.Time, policy Policy) []domain.Slot {
	start := horizonStart(reference, policy.WeekStart)

	slots := make([]domain.Slot, 0, policy.HorizonDays*slotsPerDay(policy))

	for dayOffset := 0; dayOffset < policy.HorizonDays; dayOffset++ {
		day := start.AddDate(0, 0, dayOffset)

		for hour := policy.DayStartHour; hour < policy.DayEndHour; hour++ {
			for minute := 0; minute < 60; minute += policy.IntervalMinutes {
				slotTime := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
				slots = append(slots, domain.NewSlot(slotTime))
			}
		}
	}

	return slots
}

// Catalog каталог слотов, сгенерированный один раз на старте процесса.
// После создания неизменяем, читается без синхронизации.
// Горизонт намеренно НЕ сдвигается вперед по ходу работы процесса:
// бронирования, созданные по старым ID, остаются разрешимыми в рамках запуска.
type Catalog struct {
	slots []domain.Slot
	byID  map[string]domain.Slot
}

// New создает каталог, генерируя слоты для reference по указанной политике
func New(reference time.Time, policy Policy) *Catalog {
	slots := Generate(reference, policy)

	byID := make(map[string]domain.Slot, len(slots))
	for _, slot := range slots {
		byID[slot.ID] = slot
	}

	return &Catalog{
		slots: slots,
		byID:  byID,
	}
}

// Slots возвращает копию последовательности слотов в порядке генерации
func (c *Catalog) Slots() []domain.Slot {
	out := make([]domain.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Resolve возвращает слот по его ID
func (c *Catalog) Resolve(id string) (domain.Slot, bool) {
	slot, ok := c.byID[id]
	return slot, ok
}

// Len возвращает количество слотов в каталоге
func (c *Catalog) Len() int {
	return len(c.slots)
}

// horizonStart вычисляет первый день горизонта.
// Для WeekStartMonday — понедельник недели, содержащей reference.
func horizonStart(reference time.Time, weekStart string) time.Time {
	ref := reference.UTC()
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	if weekStart == domain.WeekStartMonday {
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	}

	return day
}

func slotsPerDay(policy Policy) int {
	if policy.IntervalMinutes <= 0 {
		return 0
	}
	return (policy.DayEndHour - policy.DayStartHour) * 60 / policy.IntervalMinutes
}
