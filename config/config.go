package config

import "time"

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"sage-api"`
	Port                          int      `env:"PORT" env-default:"3007"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"30"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	ReadHeaderTimeoutSeconds      int      `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST"`
	StartupMaxAttempts            int      `env:"STARTUP_MAX_ATTEMPTS" env-default:"5"`

	// Completion provider (OpenAI chat completions format)
	LLMAPIURL      string        `env:"LLM_API_URL" env-default:""`
	LLMAPIKey      string        `env:"LLM_API_KEY" env-default:""`
	LLMModel       string        `env:"LLM_MODEL" env-default:"gemini-pro"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" env-default:"20s"`
	LLMMaxTokens   int           `env:"LLM_MAX_TOKENS" env-default:"1000"`
	LLMTemperature float64       `env:"LLM_TEMPERATURE" env-default:"0.2"`

	// Persons directory service
	PersonsServiceURL string        `env:"PERSONS_SERVICE_URL" env-default:""`
	PersonsTimeout    time.Duration `env:"PERSONS_TIMEOUT" env-default:"10s"`

	// Context construction
	MaxContextPersons int `env:"MAX_CONTEXT_PERSONS" env-default:"12"`

	// Audit log service
	LogsServiceURL  string        `env:"LOGS_SERVICE_URL" env-default:"http://logs-service:3005/logs"`
	LogsTimeout     time.Duration `env:"LOGS_TIMEOUT" env-default:"5s"`
	LogLLMResponses bool          `env:"LOG_LLM_RESPONSES" env-default:"true"`

	// Tracing
	TracingEnabled  bool   `env:"TRACING_ENABLED" env-default:"false"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" env-default:"localhost:4317"`
	TracingProtocol string `env:"TRACING_PROTOCOL" env-default:"grpc"`
	TracingInsecure bool   `env:"TRACING_INSECURE" env-default:"true"`
}
