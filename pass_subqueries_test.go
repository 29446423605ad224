package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubqueriesFusesCapturesUnderProperty(t *testing.T) {
	p := NewSubqueriesPass(PropRelatedTo, NewGregorianCalendar())

	captures := []Term{
		NewResourceType(TypeImage, Position{}),
		NewComparison(PropMessageFrom, NewStringLiteral("Alice", Position{}), Contains, Position{}),
	}

	rs := p.Run(captures)
	require.Len(t, rs, 1)
	require.True(t, rs[0].IsComparison())
	assert.Equal(t, PropRelatedTo, rs[0].CompProperty)
	assert.Equal(t, Equal, rs[0].Comparator)
	assert.Equal(t, KindAnd, rs[0].Subterm.Kind)
}

func TestSubqueriesDeclinesOnEmptyCapture(t *testing.T) {
	p := NewSubqueriesPass(PropRelatedTo, NewGregorianCalendar())
	assert.Nil(t, p.Run(nil))
}
