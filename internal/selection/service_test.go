package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexStartsAtZero(t *testing.T) {
	s := NewService()
	assert.Equal(t, 0, s.Index())
}

func TestMoveClampsWithoutWraparound(t *testing.T) {
	s := NewService()
	s.SetLength(3)

	s.MoveUp()
	assert.Equal(t, 0, s.Index(), "no wraparound at the top")

	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.Index())

	s.MoveDown()
	assert.Equal(t, 2, s.Index(), "no wraparound at the bottom")

	s.MoveUp()
	assert.Equal(t, 1, s.Index())
}

func TestMoveOnEmptyListStaysAtZero(t *testing.T) {
	s := NewService()
	s.SetLength(0)

	s.MoveDown()
	assert.Equal(t, 0, s.Index())
	s.MoveUp()
	assert.Equal(t, 0, s.Index())
}

func TestNewListResetsIndex(t *testing.T) {
	s := NewService()
	s.SetLength(5)
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 2, s.Index())

	s.SetLength(3)
	assert.Equal(t, 0, s.Index(), "replacing the list resets the selection")
}

func TestIndexInvariantAfterAnyOperation(t *testing.T) {
	s := NewService()
	check := func() {
		length := s.Length()
		if length == 0 {
			assert.Equal(t, 0, s.Index())
		} else {
			assert.GreaterOrEqual(t, s.Index(), 0)
			assert.Less(t, s.Index(), length)
		}
	}

	for _, length := range []int{0, 1, 5, 2, 0, 7} {
		s.SetLength(length)
		check()
		for i := 0; i < 10; i++ {
			s.MoveDown()
			check()
		}
		for i := 0; i < 10; i++ {
			s.MoveUp()
			check()
		}
		s.Reset()
		check()
	}
}

func TestCommitInvokesFunctionWithIndex(t *testing.T) {
	s := NewService()
	committed := -1
	s.SetCommitFunction(func(i int) { committed = i })

	s.SetLength(3)
	s.MoveDown()
	s.Commit()
	assert.Equal(t, 1, committed)
}

func TestCommitOnEmptyListIsNoOp(t *testing.T) {
	s := NewService()
	called := false
	s.SetCommitFunction(func(i int) { called = true })

	s.Commit()
	assert.False(t, called)

	s.SetLength(0)
	s.Commit()
	assert.False(t, called)
}
