package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonFullName(t *testing.T) {
	t.Run("should join all name parts with single spaces", func(t *testing.T) {
		person := Person{FirstName: "Diana", SecondName: "Marcela", LastNames: "Ortiz Herrera"}

		assert.Equal(t, "Diana Marcela Ortiz Herrera", person.FullName())
	})

	t.Run("should skip empty name parts", func(t *testing.T) {
		person := Person{FirstName: "Diana", LastNames: "Ortiz Herrera"}

		assert.Equal(t, "Diana Ortiz Herrera", person.FullName())
	})

	t.Run("should return empty string when no parts are set", func(t *testing.T) {
		assert.Equal(t, "", Person{}.FullName())
	})
}
