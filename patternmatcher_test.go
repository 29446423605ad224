package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strTerms(values ...string) []Term {
	terms := make([]Term, len(values))
	for i, v := range values {
		terms[i] = NewStringLiteral(v, Position{Start: i * 10, Length: len(v)})
	}
	return terms
}

func TestCompilePatternLiteralAndCaptureSlots(t *testing.T) {
	tokens, err := compilePattern("size %1 %2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.False(t, tokens[0].isCapture)
	assert.True(t, tokens[1].isCapture)
	assert.Equal(t, 0, tokens[1].captureIndex)
	assert.True(t, tokens[2].isCapture)
	assert.Equal(t, 1, tokens[2].captureIndex)
	assert.Equal(t, 2, captureCount(tokens))
}

func TestCompilePatternRejectsBadCaptureSlot(t *testing.T) {
	_, err := compilePattern("size %x")
	require.Error(t, err)
}

func TestMatchPatternLiteralAndCapture(t *testing.T) {
	tokens, err := compilePattern("larger than %1")
	require.NoError(t, err)

	terms := strTerms("larger", "than", "2", "mb")
	captures, length, ok := matchPattern(terms, tokens, 0)
	require.True(t, ok)
	assert.Equal(t, 3, length)
	require.Len(t, captures, 1)
	assert.Equal(t, "2", captures[0].Str)
}

func TestMatchPatternDeclinesOnMismatch(t *testing.T) {
	tokens, err := compilePattern("smaller than %1")
	require.NoError(t, err)

	terms := strTerms("larger", "than", "2")
	_, _, ok := matchPattern(terms, tokens, 0)
	assert.False(t, ok)
}

func TestMatchPatternEllipsisCatchesUpToStopWord(t *testing.T) {
	tokens, err := compilePattern("related to ... ,")
	require.NoError(t, err)

	terms := strTerms("related", "to", "images", "sent", "by", "Alice", ",")
	captures, length, ok := matchPattern(terms, tokens, 0)
	require.True(t, ok)
	assert.Equal(t, 7, length)

	values := literalStrings(captures)
	assert.Equal(t, []string{"images", "sent", "by", "Alice"}, values)
}

func TestMatchPatternEllipsisWithoutStopConsumesRest(t *testing.T) {
	tokens, err := compilePattern("related to ...")
	require.NoError(t, err)

	terms := strTerms("related", "to", "images", "sent")
	captures, length, ok := matchPattern(terms, tokens, 0)
	require.True(t, ok)
	assert.Equal(t, 4, length)
	assert.Equal(t, []string{"images", "sent"}, literalStrings(captures))
}

func TestRunSingleRuleSplicesAndRestarts(t *testing.T) {
	tokens, err := compilePattern("larger than %1")
	require.NoError(t, err)

	terms := strTerms("images", "larger", "than", "2", "mb")

	progress := runSingleRule(&terms, tokens, func(captures []Term) []Term {
		return []Term{NewStringLiteral("BIG:"+captures[0].Str, Position{})}
	})

	require.True(t, progress)
	assert.Equal(t, []string{"images", "BIG:2", "mb"}, literalStrings(terms))
}

func TestRunSingleRuleDeclineLeavesTermsUntouched(t *testing.T) {
	tokens, err := compilePattern("smaller than %1")
	require.NoError(t, err)

	terms := strTerms("images", "larger", "than", "2", "mb")
	progress := runSingleRule(&terms, tokens, func(captures []Term) []Term {
		t.Fatal("pass function should never be invoked when the pattern never matches")
		return nil
	})

	assert.False(t, progress)
	assert.Equal(t, []string{"images", "larger", "than", "2", "mb"}, literalStrings(terms))
}

func TestRunSingleRuleEmptyReplacementDeclines(t *testing.T) {
	tokens, err := compilePattern("larger than %1")
	require.NoError(t, err)

	terms := strTerms("images", "larger", "than", "2", "mb")
	progress := runSingleRule(&terms, tokens, func(captures []Term) []Term {
		return nil
	})

	assert.False(t, progress)
	assert.Equal(t, []string{"images", "larger", "than", "2", "mb"}, literalStrings(terms))
}

func TestSpliceSingleReplacementInheritsSpanPosition(t *testing.T) {
	terms := strTerms("a", "b", "c")
	terms[0].Pos = Position{Start: 0, Length: 1}
	terms[1].Pos = Position{Start: 2, Length: 1}

	spliceTerms(&terms, 0, 2, []Term{NewStringLiteral("ab", Position{})})

	require.Len(t, terms, 2)
	assert.Equal(t, Position{Start: 0, Length: 3}, terms[0].Pos)
}

func TestRunPassAppliesEveryAlternationRule(t *testing.T) {
	terms := strTerms("foo", "bar")

	progress, err := runPass(&terms, "baz;bar", func(captures []Term) []Term {
		return []Term{NewStringLiteral("MATCHED", Position{})}
	})

	require.NoError(t, err)
	assert.True(t, progress)
	assert.Equal(t, []string{"foo", "MATCHED"}, literalStrings(terms))
}

func TestRunPassPropagatesCompileError(t *testing.T) {
	terms := strTerms("foo")
	_, err := runPass(&terms, "%bad", func(captures []Term) []Term { return nil })
	require.Error(t, err)
}
