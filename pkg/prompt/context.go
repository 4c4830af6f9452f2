// Package prompt renders canonical person records into the textual context
// sent to the completion provider
package prompt

import (
	"fmt"
	"strings"

	"github.com/Ramsey-B/sage/pkg/models"
)

// NoPersonsContext is returned when the directory has no records, so the
// completion step still receives meaningful context
const NoPersonsContext = "No hay personas registradas en el sistema."

// BuildContext renders one labeled, pipe-delimited line per person in input
// order. Callers bound the slice before calling; BuildContext itself never
// truncates, which keeps prompt size predictable at the call site.
func BuildContext(persons []models.Person) string {
	if len(persons) == 0 {
		return NoPersonsContext
	}

	lines := make([]string, 0, len(persons))
	for _, p := range persons {
		line := fmt.Sprintf(
			"Nombre: %s | Fecha de nacimiento: %s | Género: %s | Correo: %s | Documento: %s %s | Foto: %s",
			p.FullName(),
			p.BirthDate,
			p.Gender,
			p.Email,
			p.DocumentType,
			p.DocumentNumber,
			photoLabel(p),
		)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func photoLabel(p models.Person) string {
	if p.Photo == "" {
		return "Sin foto"
	}
	return p.Photo
}
