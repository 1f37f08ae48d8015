package crdt

import (
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/shiftsync/internal/models"
)

// Clock представляет векторные часы узла для упорядочивания событий
// в распределенной системе без синхронизации физического времени.
// Потокобезопасная обертка над неизменяемым models.VectorClock.
type Clock struct {
	current models.VectorClock
	mu      sync.Mutex
}

// NewClock создает новые часы узла с уникальным идентификатором (UUID).
func NewClock() *Clock {
	return NewClockWithNodeID(uuid.New().String())
}

// NewClockWithNodeID создает часы с заданным идентификатором узла.
// Используется для тестирования или восстановления состояния.
func NewClockWithNodeID(nodeID string) *Clock {
	return &Clock{
		current: models.NewVectorClock(nodeID),
	}
}

// RestoreClock восстанавливает часы из сохраненного состояния
// (например, после перезапуска клиента).
func RestoreClock(vc models.VectorClock) *Clock {
	return &Clock{current: vc.Clone()}
}

// Tick регистрирует новое локальное событие и возвращает его часы.
func (c *Clock) Tick() models.VectorClock {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Tick()
	return c.current.Clone()
}

// Observe обновляет часы на основе часов удаленного события:
// фиксирует счетчик удаленного узла и все его зависимости.
// Используется при получении операции от другого узла.
func (c *Clock) Observe(remote models.VectorClock) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.MergeWith(remote)
}

// Current возвращает копию текущих часов без регистрации события.
func (c *Clock) Current() models.VectorClock {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current.Clone()
}

// NodeID возвращает идентификатор узла.
func (c *Clock) NodeID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current.NodeID
}
