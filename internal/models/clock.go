package models

import "time"

// CausalOrder описывает причинно-следственное отношение между двумя
// векторными часами.
type CausalOrder int

const (
	// OrderBefore часы a причинно предшествуют часам b (happens-before)
	OrderBefore CausalOrder = iota
	// OrderAfter часы a причинно следуют за часами b
	OrderAfter
	// OrderConcurrent часы конкурентны: ни одни не знают о других
	OrderConcurrent
	// OrderEqual часы описывают одно и то же событие
	OrderEqual
)

// String возвращает текстовое представление отношения (для логов и конфликтов).
func (o CausalOrder) String() string {
	switch o {
	case OrderBefore:
		return "before"
	case OrderAfter:
		return "after"
	case OrderConcurrent:
		return "concurrent"
	case OrderEqual:
		return "equal"
	default:
		return "unknown"
	}
}

// MergeStrategy стратегия слияния, закрепленная за часами на wire-уровне.
type MergeStrategy string

const (
	// MergeLastWriteWins слияние целыми записями по правилу Last-Write-Wins
	MergeLastWriteWins MergeStrategy = "last_write_wins"
	// MergeCustom пополевое слияние с пользовательским резолвером
	MergeCustom MergeStrategy = "custom"
)

// VectorClock представляет векторные часы одного события на одном узле.
// Counter монотонно растет для данного NodeID; Deps хранит максимальный
// известный счетчик каждого другого узла на момент события и никогда
// не уменьшается. Timestamp - физическое время в микросекундах epoch,
// используется только для детерминированного разрешения конкурентных
// обновлений, не для причинности.
type VectorClock struct {
	Deps      map[string]uint64 `json:"causal_dependencies"`
	NodeID    string            `json:"node_id"`
	Merge     MergeStrategy     `json:"merge_operation"`
	Counter   uint64            `json:"counter"`
	Timestamp uint64            `json:"timestamp"`
}

// NewVectorClock создает первые часы узла: counter = 0, пустые зависимости,
// стратегия слияния по умолчанию Last-Write-Wins. Счетчик 0 означает
// "событий еще не было": первая операция узла получает счетчик 1.
func NewVectorClock(nodeID string) VectorClock {
	return VectorClock{
		NodeID:    nodeID,
		Counter:   0,
		Timestamp: NowMicros(),
		Deps:      make(map[string]uint64),
		Merge:     MergeLastWriteWins,
	}
}

// NowMicros возвращает текущее физическое время в микросекундах epoch.
func NowMicros() uint64 {
	return uint64(time.Now().UnixMicro())
}

// Clone создает глубокую копию часов.
func (vc VectorClock) Clone() VectorClock {
	deps := make(map[string]uint64, len(vc.Deps))
	for node, counter := range vc.Deps {
		deps[node] = counter
	}

	out := vc
	out.Deps = deps
	return out
}

// Tick возвращает новые часы для следующего локального события:
// счетчик +1, физическое время не убывает (при откате стенных часов
// время поднимается на 1 мкс вместо уменьшения).
func (vc VectorClock) Tick() VectorClock {
	out := vc.Clone()
	out.Counter++

	now := NowMicros()
	if now <= out.Timestamp {
		now = out.Timestamp + 1
	}
	out.Timestamp = now

	return out
}

// Observe фиксирует в зависимостях счетчик другого узла.
// Зависимость никогда не уменьшается.
func (vc VectorClock) Observe(nodeID string, counter uint64) VectorClock {
	out := vc.Clone()
	if nodeID == out.NodeID {
		return out
	}
	if counter > out.Deps[nodeID] {
		out.Deps[nodeID] = counter
	}
	return out
}

// Compare определяет причинный порядок между vc и other.
//
// vc предшествует other, если other знает о vc: счетчик vc.NodeID,
// известный other, не меньше vc.Counter. Симметрично для OrderAfter.
// Если ни одна сторона не знает о другой - события конкурентны.
// Часы одного узла сравниваются по счетчику напрямую.
func (vc VectorClock) Compare(other VectorClock) CausalOrder {
	if vc.NodeID == other.NodeID {
		switch {
		case vc.Counter < other.Counter:
			return OrderBefore
		case vc.Counter > other.Counter:
			return OrderAfter
		default:
			return OrderEqual
		}
	}

	vcKnown := other.Deps[vc.NodeID] >= vc.Counter
	otherKnown := vc.Deps[other.NodeID] >= other.Counter

	switch {
	case vcKnown && !otherKnown:
		return OrderBefore
	case otherKnown && !vcKnown:
		return OrderAfter
	default:
		// Ни одна сторона не знает о другой, либо обе взаимно видимы
		// (обмен уже состоялся) - порядок не определен причинностью.
		return OrderConcurrent
	}
}

// MergeWith объединяет vc с other без нового локального события:
// по каждому узлу берется максимум счетчика из собственных полей
// и карт зависимостей обеих сторон. NodeID результата - от vc
// (сливающая сторона).
func (vc VectorClock) MergeWith(other VectorClock) VectorClock {
	deps := make(map[string]uint64, len(vc.Deps)+len(other.Deps)+1)

	observe := func(node string, counter uint64) {
		if counter > deps[node] {
			deps[node] = counter
		}
	}

	for node, counter := range vc.Deps {
		observe(node, counter)
	}
	for node, counter := range other.Deps {
		observe(node, counter)
	}
	observe(other.NodeID, other.Counter)

	// Собственный счетчик: максимум из своего и того, что другая
	// сторона знает о нас.
	counter := vc.Counter
	if seen := deps[vc.NodeID]; seen > counter {
		counter = seen
	}
	delete(deps, vc.NodeID)

	ts := vc.Timestamp
	if other.Timestamp > ts {
		ts = other.Timestamp
	}
	if now := NowMicros(); now > ts {
		ts = now
	}

	return VectorClock{
		NodeID:    vc.NodeID,
		Counter:   counter,
		Timestamp: ts,
		Deps:      deps,
		Merge:     vc.Merge,
	}
}

// MergeEvent объединяет часы и регистрирует слияние как новое локальное
// событие: счетчик сливающего узла = max(a, b) + 1.
func (vc VectorClock) MergeEvent(other VectorClock) VectorClock {
	out := vc.MergeWith(other)
	out.Counter++
	return out
}

// NewerThan сравнивает физические метки времени двух часов для
// разрешения конкурентных обновлений по правилу LWW:
// больший Timestamp выигрывает, при равенстве - лексикографически
// больший NodeID (документированная конвенция для детерминизма).
func (vc VectorClock) NewerThan(other VectorClock) bool {
	if vc.Timestamp != other.Timestamp {
		return vc.Timestamp > other.Timestamp
	}
	return vc.NodeID > other.NodeID
}
