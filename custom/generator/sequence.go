package generator

// Sequence hands out consecutive identifiers for one table.
type Sequence struct {
	next int
}

func NewSequence(start int) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Peek returns the identifier the next call to Next will hand out.
func (s *Sequence) Peek() int {
	return s.next
}
