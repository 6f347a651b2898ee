package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/elysium/internal/logging"
	"github.com/muurk/elysium/internal/version"
)

// Export is the document written by the Export action.
type Export struct {
	Exported   time.Time `yaml:"exported"`
	Version    string    `yaml:"version"`
	Mode       string    `yaml:"mode"`
	Components []Report  `yaml:"components"`
}

// Snapshot collects the reports of every Reporter, in component order.
func (a *App) Snapshot() Export {
	doc := Export{
		Exported: a.now().UTC(),
		Version:  version.Version,
		Mode:     a.mode.String(),
	}
	for _, c := range a.components {
		if r, ok := c.(Reporter); ok {
			doc.Components = append(doc.Components, r.Report())
		}
	}
	return doc
}

// export writes the snapshot and returns the notice to show.
func (a *App) export() string {
	path, err := a.writeExport()
	if err != nil {
		logging.Warn("Export failed", zap.Error(err))
		return fmt.Sprintf("Export failed: %v", err)
	}
	logging.Info("State exported", zap.String("path", path))
	return "Exported to " + path
}

func (a *App) writeExport() (string, error) {
	doc := a.Snapshot()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}

	dir := a.exportDir
	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return "", fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	name := fmt.Sprintf("%s-export-%s.yaml", version.Name, doc.Exported.Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
