package bloggen

import (
	"context"
	"errors"
	"fmt"
)

// CodeAPIKeyNotConfigured is the stable machine-readable code callers use
// to tell a missing credential apart from transient upstream failures.
const CodeAPIKeyNotConfigured = "API_KEY_NOT_CONFIGURED"

// ErrMissingAPIKey is returned by a Completer configured without
// credentials. No network call is attempted in that case.
var ErrMissingAPIKey = errors.New("api key is not configured")

// UpstreamError carries a non-2xx response from the completion service so
// the failure envelope can preserve the status code.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion service returned status %d: %s", e.StatusCode, e.Message)
}

// Completion is the normalized success payload of a completion call.
type Completion struct {
	Content string
}

// Completer issues a single chat completion against the configured model
// endpoint. Implementations must honor ctx cancellation and perform no
// retries.
type Completer interface {
	HasCredentials() bool
	Complete(ctx context.Context, model ModelConfig, system, prompt string) (*Completion, error)
}

// Metadata echoes the resolved request fields on a successful generation.
type Metadata struct {
	Topic          string `json:"topic"`
	MainName       string `json:"mainName"`
	Type           string `json:"type"`
	Industry       string `json:"industry"`
	Location       string `json:"location"`
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
	Length         string `json:"length"`
	ImageCount     int    `json:"imageCount"`
	GeneratedAt    string `json:"generatedAt"`
}

// Result is the uniform envelope returned by the pipeline. Exactly one
// variant is populated: the generation fields when Success is true, the
// error fields otherwise.
type Result struct {
	Success       bool           `json:"success"`
	BlogPost      string         `json:"blogPost,omitempty"`
	WordCount     int            `json:"wordCount,omitempty"`
	Model         string         `json:"model,omitempty"`
	ImageAnalysis *ImageAnalysis `json:"imageAnalysis,omitempty"`
	Metadata      *Metadata      `json:"metadata,omitempty"`
	Error         string         `json:"error,omitempty"`
	Code          string         `json:"code,omitempty"`
	StatusCode    int            `json:"statusCode,omitempty"`
}

func failure(message string) *Result {
	return &Result{Error: message}
}

func failureCode(message, code string) *Result {
	return &Result{Error: message, Code: code}
}
