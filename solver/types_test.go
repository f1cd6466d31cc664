package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitConversions(t *testing.T) {
	for _, i := range []int{1, -1, 3, -3, 42, -42} {
		assert.Equal(t, i, IntToLit(i).Int())
	}
	assert.Equal(t, LitUndef, IntToLit(0))
	assert.Equal(t, 0, LitUndef.Int())
}

func TestLitNegation(t *testing.T) {
	l := IntToLit(5)
	assert.Equal(t, -5, l.Negation().Int())
	assert.Equal(t, l, l.Negation().Negation())
	assert.True(t, l.IsPositive())
	assert.False(t, l.Negation().IsPositive())
}

func TestAssignment(t *testing.T) {
	asg := Assignment{True, False, Unassigned}
	assert.True(t, IntToLit(1).SatisfiedBy(asg))
	assert.False(t, IntToLit(-1).SatisfiedBy(asg))
	assert.True(t, IntToLit(-2).SatisfiedBy(asg))
	assert.False(t, IntToLit(3).SatisfiedBy(asg))
	assert.False(t, IntToLit(-3).SatisfiedBy(asg))
	assert.Equal(t, Unassigned, asg.Value(12)) // Out of range is free

	assert.Equal(t, map[int]bool{1: true, 2: false}, asg.Model())
}
