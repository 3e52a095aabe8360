package selection

// Service is the keyboard-driven selection state machine. It is a pure
// (length, index) -> clamped index machine; rendering reads Index and never
// mutates the state directly.
type Service struct {
	state    *State
	commitFn func(int)
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{
		state: &State{},
	}
}

// SetCommitFunction sets the function invoked when a selection is committed
func (s *Service) SetCommitFunction(fn func(index int)) {
	s.commitFn = fn
}

// SetLength installs a new result-list length and resets the index, since a
// new list invalidates the old position.
func (s *Service) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	s.state.Length = n
	s.state.Index = 0
}

// MoveDown moves the highlight down one row, clamped; no wraparound
func (s *Service) MoveDown() {
	if s.state.Index < s.state.Length-1 {
		s.state.Index++
	}
}

// MoveUp moves the highlight up one row, clamped; no wraparound
func (s *Service) MoveUp() {
	if s.state.Index > 0 {
		s.state.Index--
	}
}

// Reset returns the highlight to the top of the list
func (s *Service) Reset() {
	s.state.Index = 0
}

// Index returns the current highlight position
func (s *Service) Index() int {
	return s.state.Index
}

// Length returns the current list length
func (s *Service) Length() int {
	return s.state.Length
}

// Commit invokes the commit function for the highlighted row. A commit on
// an empty list is a no-op.
func (s *Service) Commit() {
	if s.state.Length == 0 || s.commitFn == nil {
		return
	}
	if s.state.Index < 0 || s.state.Index >= s.state.Length {
		return
	}
	s.commitFn(s.state.Index)
}
