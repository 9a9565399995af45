// Package format renders CLI command output for humans and for scripts.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Write writes v in the requested format.
//
// Supported formats:
// - text (default): tab-aligned rows via the Tabular interface
// - json: strict JSON, one document per call
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "text":
		if t, ok := v.(Tabular); ok {
			return WriteTable(w, t)
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case "json":
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands. No trailing
// prose; scripts consume this directly.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Tabular is implemented by list payloads that have a human table form.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

func WriteTable(w io.Writer, t Tabular) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, h := range t.TableHeader() {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	for _, row := range t.TableRows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
