package lockmanager

import (
	"context"
	"sync"
)

// Manager — точка сериализации мутаций хранилища бронирований.
// Все последовательности read-check-write проходят через один mutex,
// поэтому две конкурирующие попытки занять один слот не могут
// обе увидеть его свободным.
//
// Работает в рамках одного процесса; координация нескольких инстансов
// через внешнюю БД сознательно вне зоны ответственности сервиса.
type Manager struct {
	mu sync.Mutex
}

// New создает новый Manager
func New() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой.
// Возвращает ошибку контекста, если он отменен до входа в критическую секцию.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
