package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsResolvesKnownLabel(t *testing.T) {
	p := NewTagsPass(NewStaticTagBackend(map[string]string{"Work": "uri:tag/1"}))
	rs := p.Run(strTerms("Work"))
	require.Len(t, rs, 1)
	require.Equal(t, KindComparison, rs[0].Kind)
	assert.Equal(t, PropHasTag, rs[0].CompProperty)
	assert.Equal(t, "uri:tag/1", rs[0].Subterm.URI)
	assert.Equal(t, Equal, rs[0].Comparator)
}

func TestTagsDeclinesOnUnknownLabel(t *testing.T) {
	p := NewTagsPass(NewStaticTagBackend(map[string]string{"Work": "uri:tag/1"}))
	assert.Nil(t, p.Run(strTerms("Personal")))
}

func TestTagsCaseSensitive(t *testing.T) {
	p := NewTagsPass(NewStaticTagBackend(map[string]string{"Work": "uri:tag/1"}))
	assert.Nil(t, p.Run(strTerms("work")))
}

func TestTagsBackendUnavailableDeclinesRatherThanPanicking(t *testing.T) {
	p := NewTagsPass(nil)
	assert.Nil(t, p.Run(strTerms("Work")))
}
