// Package output renders command results in the configured format:
// human tables via pterm, or machine-readable JSON/YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gurtar/gurtarctl/internal/config"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Printer renders structured results to a writer.
type Printer struct {
	format config.OutputFormat
	out    io.Writer
}

// NewPrinter creates a printer for the configured output format.
func NewPrinter(cfg *config.Config) *Printer {
	return &Printer{format: cfg.Output.Format, out: os.Stdout}
}

// NewPrinterTo creates a printer writing to w, used by tests.
func NewPrinterTo(format config.OutputFormat, w io.Writer) *Printer {
	return &Printer{format: format, out: w}
}

// Table renders rows under a header. In JSON/YAML mode the raw value is
// emitted instead so output stays scriptable.
func (p *Printer) Table(header []string, rows [][]string, raw any) error {
	switch p.format {
	case config.OutputJSON:
		return p.renderJSON(raw)
	case config.OutputYAML:
		return p.renderYAML(raw)
	default:
		data := pterm.TableData{header}
		data = append(data, rows...)
		return pterm.DefaultTable.
			WithHasHeader().
			WithWriter(p.out).
			WithData(data).
			Render()
	}
}

// Object renders a single structured value.
func (p *Printer) Object(v any) error {
	switch p.format {
	case config.OutputYAML:
		return p.renderYAML(v)
	default:
		return p.renderJSON(v)
	}
}

func (p *Printer) renderJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) renderYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = p.out.Write(data)
	return err
}
