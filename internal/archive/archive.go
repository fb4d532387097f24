package archive

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"saf/internal/dcxml"
	ioutils "saf/internal/io"
	"saf/internal/model"
)

const (
	// ContentsFileName is the per-item listing of file base names.
	ContentsFileName = "contents"

	// MetadataFileName is the per-item Dublin Core document.
	MetadataFileName = "dublin_core.xml"
)

// ErrCollision reports a directory-mode output path that already exists.
// Existing output is never overwritten.
var ErrCollision = errors.New("output path already exists")

// Reporter receives human-readable notes as write operations progress.
// A nil Reporter is valid and disables reporting.
type Reporter func(msg string)

func (r Reporter) report(format string, args ...any) {
	if r != nil {
		r(fmt.Sprintf(format, args...))
	}
}

// Archive holds parsed items plus the folder their file references are
// resolved against. An Archive is built once and then consumed by a
// single write operation; it is not mutated afterward.
type Archive struct {
	// InputFolder is the directory item file paths are relative to.
	InputFolder string

	// Items in source row order.
	Items []model.Item
}

// FromCSV reads a CSV file into an Archive. The header row defines the
// item keys; each following row becomes one item, in row order. The CSV's
// directory becomes the archive's input folder.
//
// A CSV without rows yields an empty archive. A malformed row aborts with
// an error wrapping model.ErrValidation, before any output is written.
func FromCSV(csvPath string) (*Archive, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a := &Archive{InputFolder: filepath.Dir(csvPath)}

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return a, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", csvPath, err)
	}

	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s row %d: %w", csvPath, rowNum, err)
		}

		row := make(model.Row, 0, len(record))
		for i, value := range record {
			row = append(row, model.Field{Key: header[i], Value: value})
		}
		item, err := model.ItemFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", csvPath, rowNum, err)
		}
		a.Items = append(a.Items, *item)
	}
	return a, nil
}

// itemName returns the zero-padded sequential folder name for item nr,
// starting at item_000.
func itemName(nr int) string {
	return fmt.Sprintf("item_%03d", nr)
}

// WriteToPath materializes the archive as a directory tree under
// outputPath: one item_NNN folder per item with its contents listing,
// copied files, and dublin_core.xml.
//
// An already-existing item folder aborts with ErrCollision. A failure
// mid-write stops further processing; previously written items remain on
// disk.
func (a *Archive) WriteToPath(ctx context.Context, outputPath string, report Reporter) error {
	for nr, item := range a.Items {
		itemPath := filepath.Join(outputPath, itemName(nr))
		report.report("creating '%s' ...", itemPath)
		if err := ioutils.MkdirNew(itemPath); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("%w: %s", ErrCollision, itemPath)
			}
			return err
		}

		if err := a.writeContents(ctx, item, itemPath, report); err != nil {
			return err
		}
		if err := a.copyFiles(ctx, item, itemPath, report); err != nil {
			return err
		}

		metadataPath := filepath.Join(itemPath, MetadataFileName)
		report.report("writing '%s'", metadataPath)
		doc := dcxml.Build(item.Metadata.DC, model.SchemaDC)
		if err := doc.WriteFile(metadataPath); err != nil {
			return err
		}
	}
	return nil
}

// writeContents writes the item's contents file: one file base name per
// line, newline-terminated, in file order.
func (a *Archive) writeContents(ctx context.Context, item model.Item, itemPath string, report Reporter) error {
	contentsPath := filepath.Join(itemPath, ContentsFileName)
	report.report("writing '%s'", contentsPath)
	return ioutils.WriteFile(ctx, contentsPath, contentsListing(item))
}

// copyFiles copies each referenced file, resolved against the input
// folder, into the item folder under its base name.
func (a *Archive) copyFiles(ctx context.Context, item model.Item, itemPath string, report Reporter) error {
	for _, file := range item.Files {
		srcPath := filepath.Join(a.InputFolder, file)
		dstPath := filepath.Join(itemPath, filepath.Base(file))
		report.report("  copying '%s' to '%s'", srcPath, itemPath)
		if err := ioutils.CopyFile(ctx, srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// contentsListing renders the contents file for an item.
func contentsListing(item model.Item) []byte {
	var b strings.Builder
	for _, file := range item.Files {
		b.WriteString(filepath.Base(file))
		b.WriteString("\n")
	}
	return []byte(b.String())
}
