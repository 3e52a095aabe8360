package selection

// State holds selection state
type State struct {
	Index  int // highlighted row, always in [0, max(1, Length))
	Length int // rows in the current result list
}
