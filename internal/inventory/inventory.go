// Package inventory scans a whole source tree and records every image the
// server would publish, for export as a parquet dataset.
package inventory

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/forager/internal/images"
	"github.com/parquet-go/parquet-go"
)

// Record is one classifiable image within one item directory.
type Record struct {
	ItemID string `parquet:"item_id"`
	File   string `parquet:"file"`
	Format string `parquet:"format"`
	Width  uint64 `parquet:"width"`
	Height uint64 `parquet:"height"`
}

// Scan walks the tree under root and returns one record per classifiable
// image, in walk order. An item's id is its root-relative directory path
// with segments joined by pathSep, mirroring how the server decodes request
// identifiers. Files directly under root belong to no item and are skipped,
// as are unreadable entries.
func Scan(root, pathSep string) ([]Record, error) {
	records := []Record{}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Warn("Cannot read entry during scan", "path", path, "err", err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		dir := filepath.Dir(path)
		if dir == filepath.Clean(root) {
			return nil
		}
		info := images.Classify(path)
		if info == nil {
			return nil
		}

		relative, err := filepath.Rel(root, dir)
		if err != nil {
			return err
		}
		records = append(records, Record{
			ItemID: strings.ReplaceAll(relative, string(os.PathSeparator), pathSep),
			File:   entry.Name(),
			Format: info.Format.MediaType(),
			Width:  info.Width,
			Height: info.Height,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return records, nil
}

// WriteFile writes records to a parquet file at path. Zero records still
// produce a valid file.
func WriteFile(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	writer := parquet.NewGenericWriter[Record](file)
	if len(records) > 0 {
		if _, err := writer.Write(records); err != nil {
			file.Close()
			return fmt.Errorf("failed to write parquet rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}
