package crdt

// GCounter представляет монотонно растущий счетчик (Grow-only Counter).
// Каждый узел увеличивает только свою компоненту; значение - сумма
// всех компонент, слияние - попозиционный максимум. Слияние
// коммутативно, ассоциативно и идемпотентно.
type GCounter struct {
	counts map[string]uint64
}

// NewGCounter создает пустой G-Counter.
func NewGCounter() *GCounter {
	return &GCounter{counts: make(map[string]uint64)}
}

// Increment увеличивает компоненту узла на delta.
func (g *GCounter) Increment(nodeID string, delta uint64) {
	g.counts[nodeID] += delta
}

// Value возвращает текущее значение: сумму компонент всех узлов.
func (g *GCounter) Value() uint64 {
	var total uint64
	for _, v := range g.counts {
		total += v
	}
	return total
}

// Count возвращает компоненту конкретного узла.
func (g *GCounter) Count(nodeID string) uint64 {
	return g.counts[nodeID]
}

// Merge возвращает новый счетчик с попозиционным максимумом компонент.
// Входные счетчики не изменяются.
func (g *GCounter) Merge(other *GCounter) *GCounter {
	merged := NewGCounter()
	for node, v := range g.counts {
		merged.counts[node] = v
	}
	for node, v := range other.counts {
		if v > merged.counts[node] {
			merged.counts[node] = v
		}
	}
	return merged
}

// Clone создает глубокую копию счетчика.
func (g *GCounter) Clone() *GCounter {
	clone := NewGCounter()
	for node, v := range g.counts {
		clone.counts[node] = v
	}
	return clone
}

// PNCounter представляет счетчик с инкрементами и декрементами:
// пара G-Counter'ов (положительный и отрицательный).
type PNCounter struct {
	pos *GCounter
	neg *GCounter
}

// NewPNCounter создает пустой PN-Counter.
func NewPNCounter() *PNCounter {
	return &PNCounter{
		pos: NewGCounter(),
		neg: NewGCounter(),
	}
}

// Increment увеличивает счетчик от имени узла.
func (pn *PNCounter) Increment(nodeID string, delta uint64) {
	pn.pos.Increment(nodeID, delta)
}

// Decrement уменьшает счетчик от имени узла.
func (pn *PNCounter) Decrement(nodeID string, delta uint64) {
	pn.neg.Increment(nodeID, delta)
}

// Value возвращает текущее значение: инкременты минус декременты.
func (pn *PNCounter) Value() int64 {
	return int64(pn.pos.Value()) - int64(pn.neg.Value())
}

// Merge возвращает новый счетчик, сливая обе половины попозиционным
// максимумом.
func (pn *PNCounter) Merge(other *PNCounter) *PNCounter {
	return &PNCounter{
		pos: pn.pos.Merge(other.pos),
		neg: pn.neg.Merge(other.neg),
	}
}

// Clone создает глубокую копию счетчика.
func (pn *PNCounter) Clone() *PNCounter {
	return &PNCounter{
		pos: pn.pos.Clone(),
		neg: pn.neg.Clone(),
	}
}
