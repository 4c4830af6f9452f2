// Package llm implements the completion provider client (OpenAI chat
// completions wire format)
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/sage/pkg/httpclient"
	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/tracing"
)

// systemInstruction constrains the model to the supplied context and to
// bare-name answers for person questions
const systemInstruction = "Responde de manera breve y directa. " +
	"No incluyas razonamiento interno, ni etiquetas <think>. " +
	"Se te proporcionará un contexto que contiene una lista de personas con sus nombres, apellidos, fechas de nacimiento, documentos y correos.\n" +
	"Tu tarea es responder ÚNICAMENTE usando la información del CONTEXTO.\n" +
	"Si la respuesta está en el contexto, devuélvela EXACTAMENTE.\n" +
	"Si no está en el contexto, responde: 'No encontrado en la base de datos'.\n" +
	"Nunca inventes personas ni información adicional.\n" +
	"Cuando se te hagan preguntas relacionadas con personas responde solo con los nombres completos de las personas, uno por línea."

// Config holds completion provider configuration
type Config struct {
	URL         string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Wire types for the chat completions request/response envelope

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Client calls the completion provider
type Client struct {
	http   *httpclient.Client
	logger ectologger.Logger
	config Config
}

// NewClient creates a new completion client
func NewClient(cfg Config, http *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		http:   http,
		logger: logger,
		config: cfg,
	}
}

// Configured reports whether the provider endpoint and credential are set
func (c *Client) Configured() bool {
	return c.config.URL != "" && c.config.APIKey != ""
}

// Complete sends the query and context to the provider and returns the
// extracted answer alongside the raw payload. Complete never returns a Go
// error: configuration and transport failures land in Result.Error so the
// pipeline can degrade instead of failing.
func (c *Client) Complete(ctx context.Context, query, contextBlock string) models.CompletionResult {
	ctx, span := tracing.StartSpan(ctx, "llm.Client.Complete")
	defer span.End()

	if !c.Configured() {
		return models.CompletionResult{Error: "completion provider not configured"}
	}

	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: fmt.Sprintf("Contexto:\n%s\n\nPregunta: %s", contextBlock, query)},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	headers := map[string]string{"Authorization": "Bearer " + c.config.APIKey}
	resp, err := c.http.PostJSON(ctx, c.config.URL, payload, headers)
	if err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Completion provider call failed")
		return models.CompletionResult{Error: err.Error()}
	}

	var raw map[string]any
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		c.logger.WithContext(ctx).WithError(err).Warn("Completion provider returned malformed JSON")
		return models.CompletionResult{Error: "malformed completion response: " + err.Error()}
	}

	var envelope chatResponse
	if err := json.Unmarshal(resp.Body, &envelope); err == nil && len(envelope.Choices) > 0 {
		return models.CompletionResult{
			Answer: ExtractFinalAnswer(envelope.Choices[0].Message.Content),
			Raw:    raw,
		}
	}

	// Unexpected envelope shape; keep whatever the provider sent as the answer
	c.logger.WithContext(ctx).WithField("status", resp.StatusCode).Warn("Completion response had no choices, falling back to raw payload")
	return models.CompletionResult{
		Answer: string(resp.Body),
		Raw:    raw,
	}
}
