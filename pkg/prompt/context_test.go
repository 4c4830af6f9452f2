package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramsey-B/sage/pkg/models"
)

func TestBuildContext(t *testing.T) {
	diana := models.Person{
		FirstName:      "Diana",
		SecondName:     "Marcela",
		LastNames:      "Ortiz Herrera",
		BirthDate:      "1995-04-12",
		Gender:         "Femenino",
		DocumentType:   "CC",
		DocumentNumber: "1094911001",
		Email:          "diana@example.com",
		Photo:          "https://cdn.example.com/diana.jpg",
	}

	t.Run("should render one labeled line per person", func(t *testing.T) {
		context := BuildContext([]models.Person{diana})

		assert.Equal(t,
			"Nombre: Diana Marcela Ortiz Herrera | Fecha de nacimiento: 1995-04-12 | Género: Femenino | Correo: diana@example.com | Documento: CC 1094911001 | Foto: https://cdn.example.com/diana.jpg",
			context,
		)
	})

	t.Run("should render persons in input order", func(t *testing.T) {
		carlos := models.Person{FirstName: "Carlos", LastNames: "Gómez"}

		context := BuildContext([]models.Person{diana, carlos})

		lines := strings.Split(context, "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Diana")
		assert.Contains(t, lines[1], "Carlos")
	})

	t.Run("should label a missing photo", func(t *testing.T) {
		person := diana
		person.Photo = ""

		context := BuildContext([]models.Person{person})

		assert.Contains(t, context, "Foto: Sin foto")
	})

	t.Run("should return the sentinel for an empty directory", func(t *testing.T) {
		assert.Equal(t, NoPersonsContext, BuildContext(nil))
		assert.Equal(t, NoPersonsContext, BuildContext([]models.Person{}))
	})

	t.Run("should not truncate large batches", func(t *testing.T) {
		persons := make([]models.Person, 50)
		for i := range persons {
			persons[i] = models.Person{FirstName: "P", LastNames: "L"}
		}

		context := BuildContext(persons)

		assert.Len(t, strings.Split(context, "\n"), 50)
	})
}
