package coordinator

import "sync"

// keyedMutex обеспечивает сериализацию по ключу ресурса: конкурентные
// synchronize-вызовы, затрагивающие один и тот же ресурс, выполняются
// последовательно; разные ресурсы сливаются полностью параллельно.
type keyedMutex struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock захватывает мьютекс ключа, создавая его при первом обращении.
func (km *keyedMutex) Lock(key string) {
	km.mu.Lock()
	lock, ok := km.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		km.locks[key] = lock
	}
	km.mu.Unlock()

	lock.Lock()
}

// Unlock освобождает мьютекс ключа.
func (km *keyedMutex) Unlock(key string) {
	km.mu.Lock()
	lock := km.locks[key]
	km.mu.Unlock()

	if lock != nil {
		lock.Unlock()
	}
}
