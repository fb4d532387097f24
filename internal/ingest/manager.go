package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"saf/internal/archive"
	"saf/internal/config"
	ioutils "saf/internal/io"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an import progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Mode selects the output form of an import.
type Mode int

const (
	// ModeAuto infers the mode: a .zip output path means zip output,
	// anything else directory output, falling back to the configured
	// container setting when no output path is given.
	ModeAuto Mode = iota

	// ModeDir writes one item_NNN directory per item.
	ModeDir

	// ModeZip writes a single compressed zip file.
	ModeZip
)

// Options control a single import run.
type Options struct {
	// OutputPath is where output lands. Empty means auto-name a
	// non-colliding path under the configured output root.
	OutputPath string

	// Mode picks directory or zip output; ModeAuto infers it.
	Mode Mode
}

// Manager runs CSV-to-archive imports and reports progress through a
// caller-supplied callback. The import itself is sequential: items, then
// files within an item, in input order.
type Manager struct {
	settings   *config.Settings
	onProgress func(ProgressEvent)
}

// NewManager creates a new import Manager. onProgress may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		onProgress: onProgress,
	}
}

func (m *Manager) progress(ev ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(ev)
	}
}

// Run imports one CSV source and returns the path the archive was
// written to.
//
// Errors from parsing (model.ErrValidation), writing (archive.ErrCollision,
// missing source files) and the filesystem propagate to the caller; there
// are no retries. Output written before a failure is left in place.
func (m *Manager) Run(ctx context.Context, inputPath string, opts Options) (string, error) {
	a, err := archive.FromCSV(inputPath)
	if err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return "", err
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("parsed %d item(s) from %s", len(a.Items), inputPath),
		Level:   LevelInfo,
	})

	mode := opts.Mode
	if mode == ModeAuto {
		mode = m.inferMode(opts.OutputPath)
	}
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = m.autoName(inputPath, mode)
	}

	reporter := func(msg string) {
		m.progress(ProgressEvent{Message: msg, Level: LevelVerbose})
	}

	switch mode {
	case ModeZip:
		if err := ioutils.EnsureDir(filepath.Dir(outputPath)); err != nil {
			m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
			return "", err
		}
		err = a.WriteToZip(ctx, outputPath, reporter)
	default:
		if err := ioutils.MkdirNew(outputPath); err != nil {
			if errors.Is(err, fs.ErrExist) {
				err = fmt.Errorf("%w: %s", archive.ErrCollision, outputPath)
			}
			m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
			return "", err
		}
		err = a.WriteToPath(ctx, outputPath, reporter)
	}
	if err != nil {
		m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
		return "", err
	}

	m.progress(ProgressEvent{
		Message: fmt.Sprintf("wrote %d item(s) to %s", len(a.Items), outputPath),
		Level:   LevelSuccess,
	})
	return outputPath, nil
}

// inferMode maps an output path to a mode: .zip means zip output. With no
// output path the configured container default decides.
func (m *Manager) inferMode(outputPath string) Mode {
	if outputPath != "" {
		if strings.EqualFold(filepath.Ext(outputPath), ".zip") {
			return ModeZip
		}
		return ModeDir
	}
	if m.settings.Container {
		return ModeZip
	}
	return ModeDir
}

// autoName picks a fresh output path under the configured output root:
// <root>/<stem>, then <root>/<stem>.001, and so on (with a .zip suffix in
// zip mode).
func (m *Manager) autoName(inputPath string, mode Mode) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stem = ioutils.SanitizeFileName(stem)

	ext := ""
	if mode == ModeZip {
		ext = ".zip"
	}
	return ioutils.UniquePath(m.settings.OutputRoot, stem, ext)
}
