package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saf/internal/archive"
	"saf/internal/config"
)

func writeTestCSV(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))
	csvPath := filepath.Join(dir, "thesis.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return csvPath
}

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	settings := config.DefaultSettings()
	settings.OutputRoot = t.TempDir()
	return settings
}

func TestManager_Run_DirMode(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")
	manager := NewManager(testSettings(t), nil)

	out, err := manager.Run(context.Background(), csvPath, Options{})
	require.NoError(t, err)

	assert.Equal(t, "thesis", filepath.Base(out))
	_, err = os.Stat(filepath.Join(out, "item_000", archive.MetadataFileName))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "item_000", "a.txt"))
	assert.NoError(t, err)
}

// Two auto-named runs over the same input must land in distinct paths.
func TestManager_Run_AutoNamingAvoidsCollisions(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")
	manager := NewManager(testSettings(t), nil)

	first, err := manager.Run(context.Background(), csvPath, Options{})
	require.NoError(t, err)
	second, err := manager.Run(context.Background(), csvPath, Options{})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "thesis", filepath.Base(first))
	assert.Equal(t, "thesis.001", filepath.Base(second))
}

func TestManager_Run_ZipMode(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")
	manager := NewManager(testSettings(t), nil)

	out, err := manager.Run(context.Background(), csvPath, Options{Mode: ModeZip})
	require.NoError(t, err)

	assert.Equal(t, "thesis.zip", filepath.Base(out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestManager_Run_InfersZipFromSuffix(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")
	settings := testSettings(t)
	manager := NewManager(settings, nil)

	out := filepath.Join(settings.OutputRoot, "explicit.zip")
	got, err := manager.Run(context.Background(), csvPath, Options{OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, out, got)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "a .zip output path must produce a zip file, not a directory")
}

func TestManager_Run_ExistingExplicitOutputCollides(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")
	settings := testSettings(t)
	manager := NewManager(settings, nil)

	out := filepath.Join(settings.OutputRoot, "taken")
	require.NoError(t, os.MkdirAll(out, 0755))

	_, err := manager.Run(context.Background(), csvPath, Options{OutputPath: out})
	require.Error(t, err)
	assert.ErrorIs(t, err, archive.ErrCollision)
}

func TestManager_Run_ReportsProgress(t *testing.T) {
	csvPath := writeTestCSV(t, "files,dc.title", "a.txt,First")

	var events []ProgressEvent
	manager := NewManager(testSettings(t), func(ev ProgressEvent) {
		events = append(events, ev)
	})

	_, err := manager.Run(context.Background(), csvPath, Options{})
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, LevelInfo, events[0].Level)
	assert.Contains(t, events[0].Message, "parsed 1 item(s)")
	last := events[len(events)-1]
	assert.Equal(t, LevelSuccess, last.Level)
	assert.Contains(t, last.Message, "wrote 1 item(s)")

	// Per-file operations arrive as verbose events.
	var verbose int
	for _, ev := range events {
		if ev.Level == LevelVerbose {
			verbose++
		}
	}
	assert.Greater(t, verbose, 0)
}

func TestManager_InferMode(t *testing.T) {
	settings := config.DefaultSettings()
	manager := NewManager(settings, nil)

	assert.Equal(t, ModeDir, manager.inferMode(""))
	assert.Equal(t, ModeDir, manager.inferMode("out/things"))
	assert.Equal(t, ModeZip, manager.inferMode("out/things.zip"))
	assert.Equal(t, ModeZip, manager.inferMode("out/things.ZIP"))

	settings.Container = true
	assert.Equal(t, ModeZip, manager.inferMode(""))
	assert.Equal(t, ModeDir, manager.inferMode("out/things"))
}
