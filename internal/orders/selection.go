package orders

import "sort"

// Selection is the owned set of record IDs targeted by bulk actions. It is
// kept store-wide: changing the active filter does not drop selected IDs.
// Prune exists for callers that prefer a view-bound selection.
type Selection struct {
	ids map[uint]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[uint]struct{})}
}

func (s *Selection) Add(id uint) {
	s.ids[id] = struct{}{}
}

func (s *Selection) Remove(id uint) {
	delete(s.ids, id)
}

// Toggle flips membership and reports whether the ID is now selected.
func (s *Selection) Toggle(id uint) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Selection) Contains(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = make(map[uint]struct{})
}

// IDs returns the selected IDs in ascending order.
func (s *Selection) IDs() []uint {
	out := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Prune drops every ID not present in the visible view.
func (s *Selection) Prune(visible []uint) {
	keep := make(map[uint]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}
