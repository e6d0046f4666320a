package domain

// Default slot generation policy
const (
	DefaultHorizonDays     = 7
	DefaultDayStartHour    = 9
	DefaultDayEndHour      = 17 // exclusive
	DefaultIntervalMinutes = 30
)

// Horizon start variants
const (
	WeekStartToday  = "today"  // rolling horizon starting today
	WeekStartMonday = "monday" // business-week horizon starting on Monday
)

// Time format constants
const (
	DateFormat       = "2006-01-02"       // YYYY-MM-DD
	TimeFormat       = "15:04"            // HH:MM
	SlotIDTimeFormat = "2006-01-02_15-04" // составная часть ID слота
)
