package nlquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroTermIsInvalid(t *testing.T) {
	var zero Term
	assert.True(t, zero.IsInvalid())
	assert.False(t, zero.IsValid())
	assert.Equal(t, KindInvalid, zero.Kind)
}

func TestLiteralConstructors(t *testing.T) {
	pos := Position{Start: 2, Length: 3}

	s := NewStringLiteral("abc", pos)
	assert.True(t, s.IsLiteralString())
	assert.Equal(t, pos, s.Pos)

	i := NewIntLiteral(42, pos)
	assert.Equal(t, LiteralInteger, i.LitKind)
	assert.EqualValues(t, 42, i.Int)

	d := NewDoubleLiteral(1.5, pos)
	assert.Equal(t, LiteralDouble, d.LitKind)

	dt := NewDateTimeLiteral(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), pos)
	assert.Equal(t, LiteralDateTime, dt.LitKind)

	b := NewBoolLiteral(true, pos)
	assert.Equal(t, LiteralBool, b.LitKind)
}

func TestComparisonOwnsSubterm(t *testing.T) {
	sub := NewIntLiteral(5, Position{})
	cmp := NewComparison(PropFileSize, sub, Greater, Position{})

	require.NotNil(t, cmp.Subterm)
	assert.EqualValues(t, 5, cmp.Subterm.Int)

	// Mutating the original sub must not affect the comparison's copy:
	// Comparison owns a fresh child, there is no shared mutable aliasing.
	sub.Int = 999
	assert.EqualValues(t, 5, cmp.Subterm.Int)
}

func TestAndOrOrderPreserved(t *testing.T) {
	a := NewStringLiteral("a", Position{Start: 0, Length: 1})
	b := NewStringLiteral("b", Position{Start: 2, Length: 1})
	and := NewAnd(a, b)

	require.Len(t, and.Subterms, 2)
	assert.Equal(t, "a", and.Subterms[0].Str)
	assert.Equal(t, "b", and.Subterms[1].Str)
}

func TestSyntheticPropertyRoundTrip(t *testing.T) {
	ref := syntheticPropertyURI(PeriodDay, true)
	assert.True(t, ref.IsSynthetic())

	period, offset, ok := ref.SyntheticPeriod()
	require.True(t, ok)
	assert.Equal(t, PeriodDay, period)
	assert.True(t, offset)

	valueRef := syntheticPropertyURI(PeriodMonth, false)
	period, offset, ok = valueRef.SyntheticPeriod()
	require.True(t, ok)
	assert.Equal(t, PeriodMonth, period)
	assert.False(t, offset)
}

func TestRealPropertyIsNotSynthetic(t *testing.T) {
	assert.False(t, PropFileSize.IsSynthetic())
	_, _, ok := PropFileSize.SyntheticPeriod()
	assert.False(t, ok)
}

func TestPeriodNameRoundTrip(t *testing.T) {
	for p := PeriodYear; p <= PeriodSecond; p++ {
		name := p.Name()
		require.NotEmpty(t, name)
		got, ok := periodFromName(name)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
}
