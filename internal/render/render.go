package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/gostcite/internal/model"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format the renderer does not know
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted output formats
var Formats = []string{"text", "markdown", "json", "yaml", "xlsx"}

// Renderer writes a sorted citation list
type Renderer struct {
	format   string
	numbered bool
	sheet    string
}

// New creates a renderer from the output configuration
func New(cfg model.OutputConfig) *Renderer {
	format := NormalizeFormat(cfg.Format)

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}

	return &Renderer{format: format, numbered: cfg.Numbered, sheet: sheet}
}

// NormalizeFormat lowercases a format name and resolves aliases (md, yml).
// Empty means text.
func NormalizeFormat(name string) string {
	format := strings.ToLower(strings.TrimSpace(name))
	switch format {
	case "":
		return "text"
	case "md":
		return "markdown"
	case "yml":
		return "yaml"
	default:
		return format
	}
}

// Write renders citations to w. The xlsx format needs a file; use WriteFile.
func (r *Renderer) Write(w io.Writer, citations []string) error {
	switch r.format {
	case "text":
		return r.writeText(w, citations)
	case "markdown":
		return r.writeMarkdown(w, citations)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(nonNil(citations))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(citations)); err != nil {
			return err
		}
		return enc.Close()
	case "xlsx":
		return fmt.Errorf("xlsx output requires an output file")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, r.format)
	}
}

// WriteFile renders citations into the file at path
func (r *Renderer) WriteFile(path string, citations []string) (err error) {
	if r.format == "xlsx" {
		return r.writeWorkbook(path, citations)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return r.Write(f, citations)
}

func (r *Renderer) writeText(w io.Writer, citations []string) error {
	for i, c := range citations {
		var err error
		if r.numbered {
			_, err = fmt.Fprintf(w, "%d. %s\n", i+1, c)
		} else {
			_, err = fmt.Fprintln(w, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeMarkdown(w io.Writer, citations []string) error {
	for i, c := range citations {
		marker := "-"
		if r.numbered {
			marker = fmt.Sprintf("%d.", i+1)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", marker, escapeMarkdown(c)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeWorkbook(path string, citations []string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", r.sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, c := range citations {
		row := i + 1
		col := 1
		if r.numbered {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellValue(r.sheet, cell, row); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
			col++
		}
		cell, _ := excelize.CoordinatesToCellName(col, row)
		if err := f.SetCellValue(r.sheet, cell, c); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// escapeMarkdown keeps list items literal when a citation contains markup characters
func escapeMarkdown(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"[", `\[`,
		"]", `\]`,
		"`", "\\`",
	).Replace(s)
}

func nonNil(citations []string) []string {
	if citations == nil {
		return []string{}
	}
	return citations
}
