package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeReleasesInReverseOnce(t *testing.T) {
	var s Scope
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.Defer(func() { order = append(order, i) })
	}
	s.Defer(nil)
	s.Close()
	s.Close()
	assert.Equal(t, []int{2, 1, 0}, order)
	assert.True(t, s.Closed())

	s.Defer(func() { order = append(order, 9) })
	assert.Equal(t, []int{2, 1, 0, 9}, order)
}
