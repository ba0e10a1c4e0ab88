package pipeline

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/internacia/dataset/sym"
)

// Emitter receives progress events from a pipeline run.
//
// Implementations include:
// - CLIEmitter: Pretty-printed terminal output using pterm
// - JSONEmitter: Structured JSON events for machine consumption
type Emitter interface {
	// EmitStage announces a pipeline stage.
	EmitStage(stage string, message string)

	// EmitArtifact announces a flushed artifact.
	EmitArtifact(path string)

	// EmitWarning reports a recovered problem (parse failure, schema
	// fallback, duplicate identifier).
	EmitWarning(message string)

	// EmitComplete reports the run summary.
	EmitComplete(summary map[string]interface{})
}

// CLIEmitter outputs pretty-printed progress to terminal using pterm
type CLIEmitter struct{}

// NewCLIEmitter creates a CLI progress emitter for terminal output
func NewCLIEmitter() *CLIEmitter {
	return &CLIEmitter{}
}

// EmitStage prints a stage announcement to terminal
func (e *CLIEmitter) EmitStage(stage string, message string) {
	pterm.Printf("%s %s: %s\n", sym.Build, pterm.LightCyan(stage), message)
}

// EmitArtifact prints a flushed artifact path
func (e *CLIEmitter) EmitArtifact(path string) {
	pterm.Printf("%s Saved %s\n", sym.OK, pterm.Green(path))
}

// EmitWarning prints a recovered problem
func (e *CLIEmitter) EmitWarning(message string) {
	pterm.Warning.Println(message)
}

// EmitComplete prints the run summary
func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	pterm.Success.Println("All datasets generated successfully!")
	for key, value := range summary {
		pterm.Printf("  %s: %v\n", key, value)
	}
}

// progressEvent represents a structured JSON progress event
type progressEvent struct {
	Type      string                 `json:"type"` // "stage", "artifact", "warning", "complete"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// JSONEmitter outputs structured JSON events to stdout
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON progress emitter for structured output
func NewJSONEmitter() *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(os.Stdout)}
}

// EmitStage emits a stage event as JSON
func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.encoder.Encode(progressEvent{
		Type:      "stage",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"stage": stage, "message": message},
	})
}

// EmitArtifact emits an artifact event as JSON
func (e *JSONEmitter) EmitArtifact(path string) {
	e.encoder.Encode(progressEvent{
		Type:      "artifact",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"path": path},
	})
}

// EmitWarning emits a warning event as JSON
func (e *JSONEmitter) EmitWarning(message string) {
	e.encoder.Encode(progressEvent{
		Type:      "warning",
		Timestamp: time.Now(),
		Data:      map[string]interface{}{"message": message},
	})
}

// EmitComplete emits a completion event as JSON
func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.encoder.Encode(progressEvent{
		Type:      "complete",
		Timestamp: time.Now(),
		Data:      summary,
	})
}

// NopEmitter discards all events. Used by tests and library callers that
// only care about the returned Result.
type NopEmitter struct{}

func (NopEmitter) EmitStage(string, string)             {}
func (NopEmitter) EmitArtifact(string)                  {}
func (NopEmitter) EmitWarning(string)                   {}
func (NopEmitter) EmitComplete(map[string]interface{})  {}
