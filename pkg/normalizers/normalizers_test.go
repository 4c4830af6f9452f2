package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseWhitespace(t *testing.T) {
	t.Run("should collapse interior runs to a single space", func(t *testing.T) {
		assert.Equal(t, "diana marcela", CollapseWhitespace("diana   marcela"))
	})

	t.Run("should trim leading and trailing whitespace", func(t *testing.T) {
		assert.Equal(t, "diana marcela", CollapseWhitespace("  diana marcela \t"))
	})

	t.Run("should treat tabs and newlines as whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", CollapseWhitespace("a\tb\nc"))
	})

	t.Run("should return empty string for whitespace-only input", func(t *testing.T) {
		assert.Equal(t, "", CollapseWhitespace("   \n\t "))
	})
}

func TestNormalizeName(t *testing.T) {
	t.Run("should lowercase and collapse whitespace", func(t *testing.T) {
		assert.Equal(t, "diana marcela ortiz herrera", NormalizeName("  DIANA  Marcela\tOrtiz Herrera "))
	})

	t.Run("should preserve punctuation", func(t *testing.T) {
		assert.Equal(t, "o'brien, j.", NormalizeName("O'Brien, J."))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once := NormalizeName("  DIANA  Marcela ")
		assert.Equal(t, once, NormalizeName(once))
	})
}

func TestApply(t *testing.T) {
	t.Run("should apply a registered normalizer", func(t *testing.T) {
		assert.Equal(t, "hello", Apply("HELLO", "lowercase"))
	})

	t.Run("should return the value unchanged for an unknown normalizer", func(t *testing.T) {
		assert.Equal(t, "HELLO", Apply("HELLO", "does_not_exist"))
	})
}

func TestApplyChain(t *testing.T) {
	t.Run("should apply normalizers in sequence", func(t *testing.T) {
		assert.Equal(t, "diana marcela", ApplyChain("  DIANA   Marcela ", "lowercase", "collapse_whitespace"))
	})

	t.Run("should return the input when no normalizers are given", func(t *testing.T) {
		assert.Equal(t, "  A ", ApplyChain("  A "))
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Run("should lowercase and trim", func(t *testing.T) {
		assert.Equal(t, "diana@example.com", NormalizeEmail("  Diana@Example.COM "))
	})

	t.Run("should pass empty input through", func(t *testing.T) {
		assert.Equal(t, "", NormalizeEmail(""))
	})
}

func TestRegistry(t *testing.T) {
	t.Run("should expose registered normalizers via Get", func(t *testing.T) {
		fn, ok := Get("trim")
		assert.True(t, ok)
		assert.Equal(t, "a", fn(" a "))
	})

	t.Run("should report missing normalizers", func(t *testing.T) {
		_, ok := Get("missing")
		assert.False(t, ok)
	})
}
