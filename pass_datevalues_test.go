package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValuesResolvesYearMonthDay(t *testing.T) {
	p := NewDateValuesPass(false)
	captures := []Term{
		NewIntLiteral(2024, Position{}),
		NewIntLiteral(3, Position{}),
		NewIntLiteral(5, Position{}),
	}

	rs := p.Run(captures)
	require.Len(t, rs, 3)
	for i, period := range []Period{PeriodYear, PeriodMonth, PeriodDay} {
		got, _, ok := rs[i].CompProperty.SyntheticPeriod()
		require.True(t, ok)
		assert.Equal(t, period, got)
	}
}

func TestDateValuesAppliesPmOffsetToHour(t *testing.T) {
	p := NewDateValuesPass(true)
	captures := []Term{{}, {}, {}, {}, NewIntLiteral(3, Position{})}

	rs := p.Run(captures)
	require.Len(t, rs, 1)
	assert.Equal(t, int64(15), rs[0].Subterm.Int)
}

func TestDateValuesRejectsOutOfRangeMonth(t *testing.T) {
	p := NewDateValuesPass(false)
	captures := []Term{{}, NewIntLiteral(99, Position{})}
	assert.Nil(t, p.Run(captures))
}

func TestDateValuesDeclinesWhenNoNewProgress(t *testing.T) {
	p := NewDateValuesPass(false)
	existing := NewComparison(syntheticPropertyURI(PeriodYear, false), NewIntLiteral(2024, Position{}), Equal, Position{})
	assert.Nil(t, p.Run([]Term{existing}))
}

func TestDateValuesPassesThroughMatchingSyntheticComparison(t *testing.T) {
	p := NewDateValuesPass(false)
	existing := NewComparison(syntheticPropertyURI(PeriodYear, false), NewIntLiteral(2024, Position{}), Equal, Position{})
	newDay := NewIntLiteral(5, Position{})

	rs := p.Run([]Term{existing, {}, newDay})
	require.Len(t, rs, 2)
	assert.Equal(t, existing.Subterm.Int, rs[0].Subterm.Int)
}
