package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourMinuteHourOnly(t *testing.T) {
	p := NewHourMinutePass(false)
	rs := p.Run([]Term{NewIntLiteral(9, Position{})})
	require.Len(t, rs, 1)
	assert.Equal(t, int64(9), rs[0].Subterm.Int)
}

func TestHourMinuteAppliesPm(t *testing.T) {
	p := NewHourMinutePass(true)
	rs := p.Run([]Term{NewIntLiteral(9, Position{})})
	require.Len(t, rs, 1)
	assert.Equal(t, int64(21), rs[0].Subterm.Int)
}

func TestHourMinuteBothFields(t *testing.T) {
	p := NewHourMinutePass(false)
	rs := p.Run([]Term{NewIntLiteral(9, Position{}), NewIntLiteral(30, Position{})})
	require.Len(t, rs, 2)

	hourPeriod, _, _ := rs[0].CompProperty.SyntheticPeriod()
	minutePeriod, _, _ := rs[1].CompProperty.SyntheticPeriod()
	assert.Equal(t, PeriodHour, hourPeriod)
	assert.Equal(t, PeriodMinute, minutePeriod)
	assert.Equal(t, int64(30), rs[1].Subterm.Int)
}

func TestHourMinuteDeclinesOnNonIntegerHour(t *testing.T) {
	p := NewHourMinutePass(false)
	assert.Nil(t, p.Run([]Term{NewStringLiteral("nine", Position{})}))
}
