package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JonMunkholm/inventory/internal/logging"
	"github.com/JonMunkholm/inventory/internal/models"
	"github.com/google/uuid"
)

// ExportHeader is the first line of every export. Size precedes color.
const ExportHeader = "sku,name,description,size,color,count"

// ExportFile is a transient CSV artifact produced by Service.Export.
// The caller serves it and then calls Cleanup.
type ExportFile struct {
	Path string // Absolute location on disk
	Name string // Base name offered to the client
	Rows int    // Item rows, excluding the header
}

// Cleanup removes the file. A file that is already gone is not an error.
func (f *ExportFile) Cleanup() error {
	err := os.Remove(f.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Export renders every item to CSV and writes it to a uniquely named file
// in the export directory.
func (s *Service) Export(ctx context.Context) (*ExportFile, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("export items: %w", err)
	}

	name := fmt.Sprintf("inventory-%s.csv", uuid.New().String())
	path := filepath.Join(s.exportDir, name)

	if err := os.WriteFile(path, []byte(RenderCSV(items, s.nullText)), 0o600); err != nil {
		return nil, fmt.Errorf("write export file: %w", err)
	}

	logging.FromContext(ctx).Debug("export file written", "file", name, "rows", len(items))
	return &ExportFile{Path: path, Name: name, Rows: len(items)}, nil
}

// RenderCSV returns the header followed by one row per item, joined by "\n"
// without a trailing newline. Every value is double-quoted, embedded quotes
// are doubled, and nil color/size render as nullText.
func RenderCSV(items []models.Item, nullText string) string {
	var b strings.Builder
	b.WriteString(ExportHeader)

	for _, item := range items {
		b.WriteByte('\n')
		writeRow(&b,
			item.SKU,
			item.Name,
			item.Description,
			optionalText(item.Size, nullText),
			optionalText(item.Color, nullText),
			strconv.Itoa(item.Count),
		)
	}

	return b.String()
}

func writeRow(b *strings.Builder, values ...string) {
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v, `"`, `""`))
		b.WriteByte('"')
	}
}

func optionalText(v *string, nullText string) string {
	if v == nil {
		return nullText
	}
	return *v
}
