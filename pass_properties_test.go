package nlquery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesAttachesPropertyToComparison(t *testing.T) {
	p := NewPropertiesPass(PropFileSize, RangeIntegerOrDouble, nil)
	existing := NewComparison(PropertyRef{}, NewIntLiteral(2000000, Position{}), Greater, Position{})

	rs := p.Run([]Term{existing})
	require.Len(t, rs, 1)
	assert.Equal(t, PropFileSize, rs[0].CompProperty)
	assert.Equal(t, Greater, rs[0].Comparator)
}

func TestPropertiesDefaultsStringToContains(t *testing.T) {
	p := NewPropertiesPass(PropMessageFrom, RangeString, nil)
	rs := p.Run([]Term{NewStringLiteral("Alice", Position{})})
	require.Len(t, rs, 1)
	assert.Equal(t, Contains, rs[0].Comparator)
	assert.Equal(t, "Alice", rs[0].Subterm.Str)
}

func TestPropertiesDefaultsOtherKindsToEqual(t *testing.T) {
	p := NewPropertiesPass(PropModifiedDate, RangeDateTime, nil)
	dt := NewDateTimeLiteral(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Position{})
	rs := p.Run([]Term{dt})
	require.Len(t, rs, 1)
	assert.Equal(t, Equal, rs[0].Comparator)
}

func TestPropertiesDeclinesOnRangeMismatch(t *testing.T) {
	p := NewPropertiesPass(PropFileSize, RangeInteger, nil)
	assert.Nil(t, p.Run([]Term{NewStringLiteral("oops", Position{})}))
}

func TestPropertiesResolvesTagRange(t *testing.T) {
	cache := newTagCache(NewStaticTagBackend(map[string]string{"Work": "uri:tag/1"}))
	p := NewPropertiesPass(PropHasTag, RangeTag, cache)

	rs := p.Run([]Term{NewStringLiteral("Work", Position{})})
	require.Len(t, rs, 1)
	assert.Equal(t, KindResource, rs[0].Subterm.Kind)
	assert.Equal(t, "uri:tag/1", rs[0].Subterm.URI)
}
