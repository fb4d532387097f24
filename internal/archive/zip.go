package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"saf/internal/dcxml"
	"saf/internal/model"
)

// generatedEntryTime pins the timestamp of generated zip entries
// (contents, dublin_core.xml) to the zip format's epoch. Copied files
// carry their source modification time. Together with the fixed item and
// file ordering this makes zip output byte-identical across runs on the
// same input.
var generatedEntryTime = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// WriteToZip materializes the archive as a single deflate-compressed zip
// file at outputPath. Entries mirror directory mode under virtual
// item_NNN/ prefixes, except that copied files keep their original
// relative path inside the item prefix.
//
// One writer handle stays open for the whole operation; entries are
// written sequentially in item and file order. A failure mid-write leaves
// a partial zip behind.
func (a *Archive) WriteToZip(ctx context.Context, outputPath string, report Reporter) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for nr, item := range a.Items {
		prefix := itemName(nr)

		for _, file := range item.Files {
			if err := a.writeZipFile(ctx, zw, prefix, file, report); err != nil {
				return err
			}
		}

		contentsPath := prefix + "/" + ContentsFileName
		report.report("writing '%s' in zip-archive", contentsPath)
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     contentsPath,
			Method:   zip.Deflate,
			Modified: generatedEntryTime,
		})
		if err != nil {
			return err
		}
		if _, err := w.Write(contentsListing(item)); err != nil {
			return err
		}

		metadataPath := prefix + "/" + MetadataFileName
		report.report("writing '%s' in zip-archive", metadataPath)
		w, err = zw.CreateHeader(&zip.FileHeader{
			Name:     metadataPath,
			Method:   zip.Deflate,
			Modified: generatedEntryTime,
		})
		if err != nil {
			return err
		}
		doc := dcxml.Build(item.Metadata.DC, model.SchemaDC)
		if err := doc.Write(w); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// writeZipFile streams one referenced file into the zip under
// <prefix>/<relative path>.
func (a *Archive) writeZipFile(ctx context.Context, zw *zip.Writer, prefix, file string, report Reporter) error {
	srcPath := filepath.Join(a.InputFolder, file)
	entryPath := prefix + "/" + filepath.ToSlash(file)
	report.report("  adding '%s' as '%s'", srcPath, entryPath)

	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     entryPath,
		Method:   zip.Deflate,
		Modified: info.ModTime().UTC(),
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
