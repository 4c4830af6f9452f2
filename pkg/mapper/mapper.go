// Package mapper converts raw directory records into canonical persons
package mapper

import (
	"fmt"

	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/normalizers"
)

// Source key candidates per canonical field, tried in order. The directory
// has shipped two naming generations; the first key that yields a non-empty
// value wins.
var (
	firstNameKeys      = []string{"primer_nombre", "firstName"}
	secondNameKeys     = []string{"segundo_nombre", "secondName"}
	lastNamesKeys      = []string{"apellidos", "lastNames"}
	birthDateKeys      = []string{"fecha_nacimiento", "birthDate"}
	genderKeys         = []string{"genero", "gender"}
	documentTypeKeys   = []string{"tipo_documento", "documentType"}
	documentNumberKeys = []string{"nro_documento", "documentNumber", "nroDocumento"}
	emailKeys          = []string{"correo", "email"}
	photoKeys          = []string{"foto", "photoUrl"}
)

// Map converts one source record into a canonical Person. Missing or
// malformed fields degrade to empty strings; Map never fails.
func Map(src models.SourceRecord) models.Person {
	return models.Person{
		FirstName:      pick(src, firstNameKeys),
		SecondName:     pick(src, secondNameKeys),
		LastNames:      pick(src, lastNamesKeys),
		BirthDate:      pick(src, birthDateKeys),
		Gender:         pick(src, genderKeys),
		DocumentType:   pick(src, documentTypeKeys),
		DocumentNumber: pick(src, documentNumberKeys),
		Email:          normalizers.Apply(pick(src, emailKeys), "nemail"),
		Photo:          pick(src, photoKeys),
	}
}

// MapAll converts a batch of source records. Records are mapped
// independently, so one malformed record never aborts the batch.
func MapAll(records []models.SourceRecord) []models.Person {
	persons := make([]models.Person, 0, len(records))
	for _, record := range records {
		persons = append(persons, Map(record))
	}
	return persons
}

// pick returns the first non-empty trimmed value among the candidate keys
func pick(src models.SourceRecord, keys []string) string {
	for _, key := range keys {
		value, ok := src[key]
		if !ok || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		if s = normalizers.Trim(s); s != "" {
			return s
		}
	}
	return ""
}
