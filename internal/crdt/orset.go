package crdt

import (
	"sort"

	"github.com/google/uuid"
)

// ORSet представляет Observed-Remove Set: множество с корректной
// семантикой конкурентных добавлений и удалений. Каждое добавление
// получает уникальный тег; удаление убирает только наблюдаемые теги.
// Элемент присутствует, пока у него есть хотя бы один неудаленный тег,
// поэтому конкурентное добавление переживает удаление чужого тега.
type ORSet struct {
	added   map[string]map[string]struct{} // elem -> set of tags
	removed map[string]map[string]struct{}
}

// NewORSet создает пустое множество.
func NewORSet() *ORSet {
	return &ORSet{
		added:   make(map[string]map[string]struct{}),
		removed: make(map[string]map[string]struct{}),
	}
}

// Add добавляет элемент с новым уникальным тегом (UUID) и возвращает тег.
func (s *ORSet) Add(elem string) string {
	tag := uuid.New().String()
	s.AddWithTag(elem, tag)
	return tag
}

// AddWithTag добавляет элемент с заданным тегом. Используется при
// применении удаленных операций, где тег уже выбран источником.
func (s *ORSet) AddWithTag(elem, tag string) {
	if s.added[elem] == nil {
		s.added[elem] = make(map[string]struct{})
	}
	s.added[elem][tag] = struct{}{}
}

// Remove удаляет элемент: помечает удаленными все наблюдаемые на данный
// момент теги. Теги, добавленные конкурентно на других репликах,
// затронуты не будут.
func (s *ORSet) Remove(elem string) {
	for tag := range s.added[elem] {
		s.removeTag(elem, tag)
	}
}

// RemoveTag удаляет конкретный тег элемента.
func (s *ORSet) RemoveTag(elem, tag string) {
	s.removeTag(elem, tag)
}

func (s *ORSet) removeTag(elem, tag string) {
	if s.removed[elem] == nil {
		s.removed[elem] = make(map[string]struct{})
	}
	s.removed[elem][tag] = struct{}{}
}

// Contains проверяет присутствие элемента: существует ли добавленный
// тег, не попавший в удаленные.
func (s *ORSet) Contains(elem string) bool {
	removed := s.removed[elem]
	for tag := range s.added[elem] {
		if _, gone := removed[tag]; !gone {
			return true
		}
	}
	return false
}

// Values возвращает отсортированный список присутствующих элементов.
func (s *ORSet) Values() []string {
	values := make([]string, 0, len(s.added))
	for elem := range s.added {
		if s.Contains(elem) {
			values = append(values, elem)
		}
	}
	sort.Strings(values)
	return values
}

// Merge возвращает новое множество: объединение added и removed обеих
// сторон. Входные множества не изменяются. Слияние коммутативно,
// ассоциативно и идемпотентно.
func (s *ORSet) Merge(other *ORSet) *ORSet {
	merged := NewORSet()
	for _, src := range []*ORSet{s, other} {
		for elem, tags := range src.added {
			for tag := range tags {
				merged.AddWithTag(elem, tag)
			}
		}
		for elem, tags := range src.removed {
			for tag := range tags {
				merged.removeTag(elem, tag)
			}
		}
	}
	return merged
}

// Clone создает глубокую копию множества.
func (s *ORSet) Clone() *ORSet {
	return NewORSet().Merge(s)
}
