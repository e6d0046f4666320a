package notify

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// ConsoleNotifier имитация уведомлений: вместо реальной отправки писем
// и календарных приглашений события пишутся в лог сервиса.
// Результат операций ядра не зависит от уведомлений.
type ConsoleNotifier struct {
	logger Logger
}

// NewConsoleNotifier создает новый ConsoleNotifier
func NewConsoleNotifier(logger Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// CalendarInvite имитирует отправку календарного приглашения после создания бронирования
func (n *ConsoleNotifier) CalendarInvite(booking *domain.Booking) {
	n.logger.Info("calendar invite sent: to=%s subject=%q details=%q time=%s",
		booking.CustomerEmail,
		"Appointment Confirmation",
		booking.Reason,
		booking.Datetime.Format("2006-01-02 15:04"),
	)
}

// StatusChanged имитирует отправку письма о смене статуса бронирования
func (n *ConsoleNotifier) StatusChanged(booking *domain.Booking) {
	n.logger.Info("email notification sent: to=%s subject=%q message=%q",
		booking.CustomerEmail,
		"Appointment "+titleStatus(booking.Status),
		"Your appointment has been "+string(booking.Status)+".",
	)
}

func titleStatus(status domain.BookingStatus) string {
	s := string(status)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
