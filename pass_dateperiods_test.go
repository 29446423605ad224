package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePeriodsForcedOffset(t *testing.T) {
	one := int64(1)
	p := NewDatePeriodsPass(PeriodDay, DatePeriodOffset, &one)

	rs := p.Run([]Term{NewStringLiteral("tomorrow", Position{})})
	require.Len(t, rs, 1)

	period, offset, ok := rs[0].CompProperty.SyntheticPeriod()
	require.True(t, ok)
	assert.Equal(t, PeriodDay, period)
	assert.True(t, offset)
	assert.Equal(t, int64(1), rs[0].Subterm.Int)
}

func TestDatePeriodsInvertedOffsetNegatesValue(t *testing.T) {
	one := int64(1)
	p := NewDatePeriodsPass(PeriodDay, DatePeriodInvertedOffset, &one)

	rs := p.Run([]Term{NewStringLiteral("yesterday", Position{})})
	require.Len(t, rs, 1)
	assert.Equal(t, int64(-1), rs[0].Subterm.Int)
}

func TestDatePeriodsVariableReadsNameThenValue(t *testing.T) {
	p := NewDatePeriodsPass(PeriodVariable, DatePeriodOffset, nil)

	rs := p.Run([]Term{NewStringLiteral("week", Position{}), NewIntLiteral(2, Position{})})
	require.Len(t, rs, 1)

	period, _, ok := rs[0].CompProperty.SyntheticPeriod()
	require.True(t, ok)
	assert.Equal(t, PeriodWeek, period)
	assert.Equal(t, int64(2), rs[0].Subterm.Int)
}

func TestDatePeriodsVariableDeclinesOnUnknownName(t *testing.T) {
	p := NewDatePeriodsPass(PeriodVariable, DatePeriodOffset, nil)
	assert.Nil(t, p.Run([]Term{NewStringLiteral("fortnight", Position{}), NewIntLiteral(2, Position{})}))
}

// The "yesterday"/"tomorrow"/"today" catalog patterns are bare literal
// tokens with no %N captures at all; Run must not index into an empty
// capture slice.
func TestDatePeriodsForcedValueWithNoCaptures(t *testing.T) {
	minusOne := int64(-1)
	p := NewDatePeriodsPass(PeriodDay, DatePeriodOffset, &minusOne)

	rs := p.Run(nil)
	require.Len(t, rs, 1)
	assert.Equal(t, int64(-1), rs[0].Subterm.Int)
}
