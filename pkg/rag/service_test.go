package rag

import (
	"context"
	"strings"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/prompt"
)

type stubFetcher struct {
	records []models.SourceRecord
}

func (s *stubFetcher) Fetch(_ context.Context) []models.SourceRecord {
	return s.records
}

type stubCompleter struct {
	result      models.CompletionResult
	calls       int
	lastQuery   string
	lastContext string
}

func (s *stubCompleter) Complete(_ context.Context, query, contextBlock string) models.CompletionResult {
	s.calls++
	s.lastQuery = query
	s.lastContext = contextBlock
	return s.result
}

type stubAudit struct {
	calls     int
	consulta  string
	respuesta string
}

func (s *stubAudit) RecordConsult(_ context.Context, consulta, respuesta string) {
	s.calls++
	s.consulta = consulta
	s.respuesta = respuesta
}

func newTestLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

var dianaRecord = models.SourceRecord{
	"primer_nombre":    "Diana",
	"segundo_nombre":   "Marcela",
	"apellidos":        "Ortiz Herrera",
	"fecha_nacimiento": "1995-04-12",
	"genero":           "Femenino",
	"tipo_documento":   "CC",
	"nro_documento":    "1094911001",
	"correo":           "diana@example.com",
}

var carlosRecord = models.SourceRecord{
	"firstName":      "Carlos",
	"secondName":     "Andrés",
	"lastNames":      "Gómez Ruiz",
	"documentNumber": "900123456",
}

func TestServiceProcess(t *testing.T) {
	t.Run("should return the person named in the answer", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord, carlosRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Diana Marcela Ortiz Herrera"}}
		auditor := &stubAudit{}

		service := NewService(newTestLogger(), fetcher, completer, auditor, DefaultConfig())

		matched := service.Process(context.Background(), "¿Quién es Diana?")

		require.Len(t, matched, 1)
		assert.Equal(t, "1094911001", matched[0].DocumentNumber)
		assert.Equal(t, 1, completer.calls)
		assert.Equal(t, "¿Quién es Diana?", completer.lastQuery)
		assert.Contains(t, completer.lastContext, "Nombre: Diana Marcela Ortiz Herrera")
	})

	t.Run("should audit every consult with the provider answer", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Diana Marcela Ortiz Herrera"}}
		auditor := &stubAudit{}

		service := NewService(newTestLogger(), fetcher, completer, auditor, DefaultConfig())
		service.Process(context.Background(), "¿Quién es Diana?")

		assert.Equal(t, 1, auditor.calls)
		assert.Equal(t, "¿Quién es Diana?", auditor.consulta)
		assert.Equal(t, "Diana Marcela Ortiz Herrera", auditor.respuesta)
	})

	t.Run("should short-circuit an empty directory without calling the provider", func(t *testing.T) {
		fetcher := &stubFetcher{}
		completer := &stubCompleter{}
		auditor := &stubAudit{}

		service := NewService(newTestLogger(), fetcher, completer, auditor, DefaultConfig())

		matched := service.Process(context.Background(), "¿Quién es Diana?")

		assert.NotNil(t, matched)
		assert.Empty(t, matched)
		assert.Equal(t, 0, completer.calls)
		assert.Equal(t, 0, auditor.calls)
	})

	t.Run("should degrade to no matches when the provider fails", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Error: "context deadline exceeded"}}
		auditor := &stubAudit{}

		service := NewService(newTestLogger(), fetcher, completer, auditor, DefaultConfig())

		matched := service.Process(context.Background(), "¿Quién es Diana?")

		assert.NotNil(t, matched)
		assert.Empty(t, matched)
	})

	t.Run("should be idempotent for a fixed directory and answer", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord, carlosRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Carlos Andrés Gómez Ruiz"}}

		service := NewService(newTestLogger(), fetcher, completer, &stubAudit{}, DefaultConfig())

		first := service.Process(context.Background(), "¿Quién es Carlos?")
		second := service.Process(context.Background(), "¿Quién es Carlos?")

		assert.Equal(t, first, second)
	})

	t.Run("should preserve directory order in the result", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord, carlosRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Carlos Andrés Gómez Ruiz\nDiana Marcela Ortiz Herrera"}}

		service := NewService(newTestLogger(), fetcher, completer, &stubAudit{}, DefaultConfig())

		matched := service.Process(context.Background(), "¿Quiénes son?")

		require.Len(t, matched, 2)
		assert.Equal(t, "Diana", matched[0].FirstName)
		assert.Equal(t, "Carlos", matched[1].FirstName)
	})

	t.Run("should bound the rendered context but match against the whole directory", func(t *testing.T) {
		records := make([]models.SourceRecord, 0, 15)
		for i := 0; i < 14; i++ {
			records = append(records, models.SourceRecord{"primer_nombre": "Persona", "nro_documento": "x"})
		}
		records = append(records, dianaRecord)

		fetcher := &stubFetcher{records: records}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Diana Marcela Ortiz Herrera"}}

		service := NewService(newTestLogger(), fetcher, completer, &stubAudit{}, Config{MaxContextPersons: 12})

		matched := service.Process(context.Background(), "¿Quién es Diana?")

		// Context holds the first 12 records only
		assert.NotContains(t, completer.lastContext, "Diana Marcela Ortiz Herrera")
		assert.Len(t, strings.Split(completer.lastContext, "\n"), 12)

		// Matching still sees the full directory
		require.Len(t, matched, 1)
		assert.Equal(t, "1094911001", matched[0].DocumentNumber)
	})

	t.Run("should still render context lines for records that map empty", func(t *testing.T) {
		fetcher := &stubFetcher{records: []models.SourceRecord{{"unexpected": "value"}}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "No encontrado en la base de datos"}}

		service := NewService(newTestLogger(), fetcher, completer, &stubAudit{}, DefaultConfig())
		service.Process(context.Background(), "¿Quién es Diana?")

		assert.NotEqual(t, prompt.NoPersonsContext, completer.lastContext)
		assert.Equal(t, 1, completer.calls)
	})
}

func TestServiceProcessWithDebug(t *testing.T) {
	t.Run("should expose the answer and raw payload", func(t *testing.T) {
		raw := map[string]any{"choices": []any{}}
		fetcher := &stubFetcher{records: []models.SourceRecord{dianaRecord}}
		completer := &stubCompleter{result: models.CompletionResult{Answer: "Diana Marcela Ortiz Herrera", Raw: raw}}

		service := NewService(newTestLogger(), fetcher, completer, &stubAudit{}, DefaultConfig())

		result := service.ProcessWithDebug(context.Background(), "¿Quién es Diana?")

		require.Len(t, result.Personas, 1)
		assert.Equal(t, "Diana Marcela Ortiz Herrera", result.Answer)
		assert.Equal(t, raw, result.Raw)
	})
}
