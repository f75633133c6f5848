package object

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/wbrown/janus-objects/graph"
)

// TableFormatter renders entities as markdown tables
type TableFormatter struct {
	// MaxWidth is the maximum width for a value cell
	MaxWidth int
	// TruncateString is the string to append when truncating
	TruncateString string
}

// NewTableFormatter creates a new table formatter with default settings
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		MaxWidth:       60,
		TruncateString: "...",
	}
}

// FormatEntity formats every attribute of e, one row per value.
// Predicates with no attribute name are shown as IRIs, and values that
// cannot be converted are shown as raw terms.
func (tf *TableFormatter) FormatEntity(e *Entity) (string, error) {
	triples, err := e.Triples()
	if err != nil {
		return "", err
	}
	if len(triples) == 0 {
		return fmt.Sprintf("_%s has no attributes_", e), nil
	}

	resolver := e.f.Resolver()
	tableString := &strings.Builder{}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment([]tw.Align{tw.AlignNone, tw.AlignNone}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"attribute", "value"})

	for _, t := range triples {
		attr, err := resolver.Unresolve(t.P)
		if err != nil {
			attr = t.P.String()
		}

		var cell string
		if native, err := e.f.ToNative(t.P, t.O); err == nil {
			cell = tf.formatValue(native)
		} else {
			cell = t.O.String()
		}
		table.Append([]string{attr, tf.truncate(cell)})
	}

	table.Render()
	tableString.WriteString(fmt.Sprintf("\n_%s: %d values_\n", e, len(triples)))

	return tableString.String(), nil
}

// formatValue converts a native value to a string representation
func (tf *TableFormatter) formatValue(val any) string {
	if val == nil {
		return "nil"
	}

	switch v := val.(type) {
	case string:
		return v
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case *Entity:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = tf.formatValue(item)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case graph.Term:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (tf *TableFormatter) truncate(s string) string {
	if tf.MaxWidth <= 0 || len(s) <= tf.MaxWidth {
		return s
	}
	return s[:tf.MaxWidth] + tf.TruncateString
}

// EntityString returns e rendered as a table, or its name if reading fails
func EntityString(e *Entity) string {
	s, err := NewTableFormatter().FormatEntity(e)
	if err != nil {
		return e.String()
	}
	return s
}
