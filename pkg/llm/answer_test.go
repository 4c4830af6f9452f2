package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFinalAnswer(t *testing.T) {
	t.Run("should strip a reasoning block", func(t *testing.T) {
		text := "<think>the user asks about Diana</think>\nDiana Marcela Ortiz Herrera"

		assert.Equal(t, "Diana Marcela Ortiz Herrera", ExtractFinalAnswer(text))
	})

	t.Run("should strip multiple reasoning blocks", func(t *testing.T) {
		text := "<think>first</think>Diana<think>second</think>"

		assert.Equal(t, "Diana", ExtractFinalAnswer(text))
	})

	t.Run("should strip blocks spanning multiple lines", func(t *testing.T) {
		text := "<think>line one\nline two\nline three</think>\nCarlos Gómez"

		assert.Equal(t, "Carlos Gómez", ExtractFinalAnswer(text))
	})

	t.Run("should leave text without markers unchanged", func(t *testing.T) {
		assert.Equal(t, "Diana Marcela", ExtractFinalAnswer("Diana Marcela"))
	})

	t.Run("should leave an unmatched open marker unchanged", func(t *testing.T) {
		assert.Equal(t, "<think>never closed Diana", ExtractFinalAnswer("<think>never closed Diana"))
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "Diana", ExtractFinalAnswer("  \nDiana\n  "))
	})

	t.Run("should return empty for reasoning-only text", func(t *testing.T) {
		assert.Equal(t, "", ExtractFinalAnswer("<think>nothing else</think>"))
	})

	t.Run("should pass empty input through", func(t *testing.T) {
		assert.Equal(t, "", ExtractFinalAnswer(""))
	})
}
