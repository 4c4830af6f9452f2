// Package rag orchestrates the retrieval-augmented consult pipeline:
// fetch persons, build context, complete, match the answer back to records.
package rag

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/sage/pkg/mapper"
	"github.com/Ramsey-B/sage/pkg/matching"
	"github.com/Ramsey-B/sage/pkg/metrics"
	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/prompt"
	"github.com/Ramsey-B/sage/pkg/tracing"
)

// PersonsFetcher retrieves raw records from the persons directory
type PersonsFetcher interface {
	Fetch(ctx context.Context) []models.SourceRecord
}

// Completer calls the completion provider
type Completer interface {
	Complete(ctx context.Context, query, contextBlock string) models.CompletionResult
}

// AuditRecorder records consult events best-effort
type AuditRecorder interface {
	RecordConsult(ctx context.Context, consulta, respuesta string)
}

// Config contains configuration for the consult pipeline
type Config struct {
	// MaxContextPersons bounds how many records are rendered into the
	// completion context (default: 12)
	MaxContextPersons int
}

// DefaultConfig returns default pipeline configuration
func DefaultConfig() Config {
	return Config{
		MaxContextPersons: 12,
	}
}

// DebugResult is the diagnostic pipeline output: the matched persons plus the
// provider's answer and raw payload
type DebugResult struct {
	Personas []models.Person `json:"personas"`
	Answer   string          `json:"answer"`
	Raw      map[string]any  `json:"raw,omitempty"`
}

// Service runs the consult pipeline
type Service struct {
	logger    ectologger.Logger
	persons   PersonsFetcher
	completer Completer
	audit     AuditRecorder
	config    Config
}

// NewService creates a new consult pipeline service
func NewService(
	logger ectologger.Logger,
	persons PersonsFetcher,
	completer Completer,
	audit AuditRecorder,
	config Config,
) *Service {
	return &Service{
		logger:    logger,
		persons:   persons,
		completer: completer,
		audit:     audit,
		config:    config,
	}
}

// Process runs the consult pipeline and returns the matched persons.
// Collaborator failures degrade the result instead of aborting it: an
// unreachable directory yields no persons, an unreachable provider yields no
// matches. Process never fails for downstream-service errors.
func (s *Service) Process(ctx context.Context, consulta string) []models.Person {
	return s.run(ctx, consulta).Personas
}

// ProcessWithDebug runs the same pipeline but keeps the provider's answer and
// raw payload for diagnostics
func (s *Service) ProcessWithDebug(ctx context.Context, consulta string) *DebugResult {
	return s.run(ctx, consulta)
}

func (s *Service) run(ctx context.Context, consulta string) *DebugResult {
	ctx, span := tracing.StartSpan(ctx, "rag.Service.Process")
	defer span.End()

	start := time.Now()
	log := s.logger.WithContext(ctx).WithField("consulta", consulta)
	log.Debug("Running consult pipeline")

	sources := s.persons.Fetch(ctx)
	personas := mapper.MapAll(sources)
	if len(personas) == 0 {
		log.Debug("Persons directory returned no records")
		metrics.ConsultsTotal.WithLabelValues("empty_directory").Inc()
		return &DebugResult{Personas: make([]models.Person, 0)}
	}

	bounded := personas
	if len(bounded) > s.config.MaxContextPersons {
		bounded = bounded[:s.config.MaxContextPersons]
	}
	contextBlock := prompt.BuildContext(bounded)

	completion := s.completer.Complete(ctx, consulta, contextBlock)
	if completion.Error != "" {
		log.WithField("error", completion.Error).Warn("Completion provider unavailable, consult degrades to no matches")
	}

	matched := matching.Match(personas, completion.Answer)

	s.audit.RecordConsult(ctx, consulta, completion.Answer)

	outcome := "matched"
	if len(matched) == 0 {
		outcome = "no_match"
	}
	metrics.ConsultsTotal.WithLabelValues(outcome).Inc()
	metrics.ConsultDuration.Observe(time.Since(start).Seconds())
	metrics.MatchedPersons.Observe(float64(len(matched)))

	log.WithFields(map[string]any{
		"persons": len(personas),
		"matched": len(matched),
	}).Info("Consult pipeline completed")

	return &DebugResult{
		Personas: matched,
		Answer:   completion.Answer,
		Raw:      completion.Raw,
	}
}
