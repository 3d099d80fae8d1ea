package util

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// ArtifactWriter dumps per-run debugging artifacts (raw model output,
// intermediate JSON, validation reports) under a request-scoped directory.
// It is a side channel: every failure is logged and swallowed so artifact
// problems can never fail a request.
type ArtifactWriter struct {
	runDir string
}

// NewArtifactWriter creates the run directory under baseDir and returns a
// writer scoped to it. On failure it returns a disabled writer.
func NewArtifactWriter(baseDir, runID string) *ArtifactWriter {
	runDir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		log.Printf("[ArtifactWriter] Failed to create run dir %s: %v", runDir, err)
		return &ArtifactWriter{}
	}
	return &ArtifactWriter{runDir: runDir}
}

// RunDir returns the run directory, or "" when the writer is disabled.
func (w *ArtifactWriter) RunDir() string {
	return w.runDir
}

// WriteText stores raw text under the given artifact name.
func (w *ArtifactWriter) WriteText(name, content string) {
	if w.runDir == "" {
		return
	}
	path := filepath.Join(w.runDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Printf("[ArtifactWriter] Failed to write %s: %v", path, err)
	}
}

// WriteJSON stores a value as indented JSON under the given artifact name.
func (w *ArtifactWriter) WriteJSON(name string, value interface{}) {
	if w.runDir == "" {
		return
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Printf("[ArtifactWriter] Failed to marshal %s: %v", name, err)
		return
	}
	w.WriteText(name, string(data))
}
