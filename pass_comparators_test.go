package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparatorsSetsComparatorOnLiteral(t *testing.T) {
	p := NewComparatorsPass(Greater)
	rs := p.Run([]Term{NewIntLiteral(5, Position{})})
	require.Len(t, rs, 1)
	assert.True(t, rs[0].IsComparison())
	assert.Equal(t, Greater, rs[0].Comparator)
	assert.True(t, rs[0].CompProperty.URI == "")
}

func TestComparatorsOverridesExistingComparison(t *testing.T) {
	p := NewComparatorsPass(Smaller)
	existing := NewComparison(PropFileSize, NewIntLiteral(1, Position{}), Equal, Position{})

	rs := p.Run([]Term{existing})
	require.Len(t, rs, 1)
	assert.Equal(t, Smaller, rs[0].Comparator)
	assert.Equal(t, PropFileSize, rs[0].CompProperty)
}

func TestComparatorsDeclinesOnOtherKinds(t *testing.T) {
	p := NewComparatorsPass(Equal)
	assert.Nil(t, p.Run([]Term{NewResourceType(TypeImage, Position{})}))
}
