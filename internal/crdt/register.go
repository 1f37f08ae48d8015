package crdt

// LWWRegister представляет Last-Write-Wins регистр: единственное
// значение с меткой времени и узлом записи. При слиянии выигрывает
// запись с большей меткой времени; при равных метках - узел с
// лексикографически большим идентификатором (документированная
// конвенция, гарантирующая сходимость независимо от порядка слияний).
type LWWRegister struct {
	Value     any    `json:"value"`
	NodeID    string `json:"node_id"`
	Timestamp uint64 `json:"timestamp"`
}

// NewLWWRegister создает регистр с начальным значением.
func NewLWWRegister(value any, timestamp uint64, nodeID string) LWWRegister {
	return LWWRegister{
		Value:     value,
		Timestamp: timestamp,
		NodeID:    nodeID,
	}
}

// Set возвращает новый регистр с обновленным значением, если метка
// новее текущей; иначе регистр остается прежним.
func (r LWWRegister) Set(value any, timestamp uint64, nodeID string) LWWRegister {
	candidate := LWWRegister{Value: value, Timestamp: timestamp, NodeID: nodeID}
	if candidate.newerThan(r) {
		return candidate
	}
	return r
}

// Merge возвращает регистр с более поздней записью из двух.
// Коммутативно: Merge(a, b) и Merge(b, a) дают один результат.
func (r LWWRegister) Merge(other LWWRegister) LWWRegister {
	if other.newerThan(r) {
		return other
	}
	return r
}

func (r LWWRegister) newerThan(other LWWRegister) bool {
	if r.Timestamp != other.Timestamp {
		return r.Timestamp > other.Timestamp
	}
	return r.NodeID > other.NodeID
}
