// Package models contains the data structures shared across the sage pipeline
package models

import "strings"

// SourceRecord is a raw person record as returned by the persons directory.
// Key names vary between directory generations, so the record stays opaque
// until the mapper converts it to a Person.
type SourceRecord map[string]any

// Person is the canonical person record used throughout the pipeline.
// Every field except Photo is guaranteed non-null after mapping; missing
// source values become empty strings.
type Person struct {
	FirstName      string `json:"primer_nombre"`
	SecondName     string `json:"segundo_nombre"`
	LastNames      string `json:"apellidos"`
	BirthDate      string `json:"fecha_nacimiento"`
	Gender         string `json:"genero"`
	DocumentType   string `json:"tipo_documento"`
	DocumentNumber string `json:"nro_documento"`
	Email          string `json:"correo"`
	Photo          string `json:"foto,omitempty"`
}

// FullName joins the person's name parts with single spaces, skipping empty parts
func (p Person) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.FirstName, p.SecondName, p.LastNames} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}
