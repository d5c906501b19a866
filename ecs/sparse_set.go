package ecs

const sparsePageSize = 256

// SparseSet maps entity ids to one component type. Values are packed densely
// for iteration; the id lookup is paged so a few high ids do not allocate
// a lookup slot for every lower id.
type SparseSet struct {
	ids    []entityID
	values []any
	// pages hold dense index + 1 per id; zero means absent.
	pages [][]int32
}

func (s *SparseSet) slot(id entityID, grow bool) *int32 {
	if s == nil || id == 0 {
		return nil
	}
	page, off := int(id/sparsePageSize), int(id%sparsePageSize)
	if page >= len(s.pages) {
		if !grow {
			return nil
		}
		s.pages = append(s.pages, make([][]int32, page+1-len(s.pages))...)
	}
	if s.pages[page] == nil {
		if !grow {
			return nil
		}
		s.pages[page] = make([]int32, sparsePageSize)
	}
	return &s.pages[page][off]
}

func (s *SparseSet) Has(id entityID) bool {
	slot := s.slot(id, false)
	return slot != nil && *slot > 0
}

// Get returns the component stored for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	slot := s.slot(id, false)
	if slot == nil || *slot == 0 {
		return nil
	}
	return s.values[*slot-1]
}

// Set stores v for id, replacing any previous value.
func (s *SparseSet) Set(id entityID, v any) {
	slot := s.slot(id, true)
	if slot == nil {
		return
	}
	if *slot > 0 {
		s.values[*slot-1] = v
		return
	}
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	*slot = int32(len(s.ids))
}

// Remove deletes id by moving the last dense entry into its place.
func (s *SparseSet) Remove(id entityID) bool {
	slot := s.slot(id, false)
	if slot == nil || *slot == 0 {
		return false
	}
	idx := int(*slot - 1)
	last := len(s.ids) - 1
	if idx != last {
		moved := s.ids[last]
		s.ids[idx] = moved
		s.values[idx] = s.values[last]
		*s.slot(moved, false) = int32(idx + 1)
	}
	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	*slot = 0
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the dense id list. Callers must not keep it across mutation.
func (s *SparseSet) IDs() []entityID {
	if s == nil {
		return nil
	}
	return s.ids
}
