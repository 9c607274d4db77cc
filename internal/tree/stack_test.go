package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := &Stack[int]{}
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, _ = s.Pop()
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, s.Len())
}
