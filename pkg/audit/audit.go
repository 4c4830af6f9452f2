// Package audit posts consult events to the external logs service
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/sage/pkg/httpclient"
	"github.com/Ramsey-B/sage/pkg/metrics"
	"github.com/Ramsey-B/sage/pkg/tracing"
)

// ActionLLMConsult is the audit action recorded for every consult
const ActionLLMConsult = "LLM_CONSULT"

// Entry is the audit event shape expected by the logs service
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Action    string         `json:"action"`
	Service   string         `json:"service"`
	Details   map[string]any `json:"details"`
}

// Config holds audit recorder configuration
type Config struct {
	URL     string
	Service string
	Timeout time.Duration
	Enabled bool
}

// Recorder delivers audit entries best-effort. Delivery runs detached from
// the request; failures are logged locally and dropped, never surfaced.
type Recorder struct {
	http   *httpclient.Client
	logger ectologger.Logger
	config Config
	wg     sync.WaitGroup
}

// NewRecorder creates a new audit recorder
func NewRecorder(cfg Config, http *httpclient.Client, logger ectologger.Logger) *Recorder {
	return &Recorder{
		http:   http,
		logger: logger,
		config: cfg,
	}
}

// RecordConsult dispatches an LLM_CONSULT entry without blocking the caller
func (r *Recorder) RecordConsult(ctx context.Context, consulta, respuesta string) {
	_, span := tracing.StartSpan(ctx, "audit.Recorder.RecordConsult")
	defer span.End()

	if !r.config.Enabled || r.config.URL == "" {
		metrics.AuditLogsTotal.WithLabelValues("skipped").Inc()
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Action:    ActionLLMConsult,
		Service:   r.config.Service,
		Details: map[string]any{
			"consulta":  consulta,
			"respuesta": respuesta,
		},
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.send(entry)
	}()
}

// Wait blocks until all in-flight deliveries finish; used on shutdown
func (r *Recorder) Wait() {
	r.wg.Wait()
}

// send posts one entry with its own timeout, detached from the request context
func (r *Recorder) send(entry Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	resp, err := r.http.PostJSON(ctx, r.config.URL, entry, nil)
	if err != nil {
		metrics.AuditLogsTotal.WithLabelValues("failed").Inc()
		r.logger.WithError(err).Error("Failed to send audit log")
		return
	}

	if !httpclient.IsSuccessStatus(resp.StatusCode) {
		metrics.AuditLogsTotal.WithLabelValues("failed").Inc()
		r.logger.WithField("status", resp.StatusCode).Error("Logs service rejected audit entry")
		return
	}

	metrics.AuditLogsTotal.WithLabelValues("sent").Inc()
	r.logger.Debug("Audit log sent to logging service")
}
