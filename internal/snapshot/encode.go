// Package snapshot encodes rendered views for output and export.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/alechenninger/worldclock/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// Ext returns the file extension used for format.
func Ext(format string) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// Encode renders v in the requested format.
func Encode(v domain.View, format string) ([]byte, error) {
	switch format {
	case "", FormatText:
		return encodeText(v), nil
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(v domain.View) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "UTC Time\n  %s\n  %s\n\n", v.UTCTime, v.UTCWeekday)
	fmt.Fprintf(&buf, "%s Time\n  %s\n  %s\n", v.Zone, v.LocalTime, v.LocalWeekday)
	if len(v.Options) == 0 {
		return buf.Bytes()
	}
	buf.WriteString("\n")
	EncodeOptions(&buf, v.Options, v.Selected)
	return buf.Bytes()
}

// EncodeOptions writes the menu as an aligned table, marking the selected row.
func EncodeOptions(buf *bytes.Buffer, opts []domain.MenuOption, selected int) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tZONE\tLABEL\tOFFSET")
	for i, o := range opts {
		mark := " "
		if i == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, o.ID, o.Label, o.Offset)
	}
	_ = tw.Flush()
}

// Line renders v on a single line, for streaming output.
func Line(v domain.View) string {
	return fmt.Sprintf("UTC %s %s | %s %s %s (%s)",
		v.UTCTime, v.UTCWeekday, v.Zone, v.LocalTime, v.LocalWeekday, v.Offset)
}

// EncodeMenu renders the zone menu alone in the requested format.
func EncodeMenu(opts []domain.MenuOption, selected int, format string) ([]byte, error) {
	switch format {
	case "", FormatText:
		var buf bytes.Buffer
		EncodeOptions(&buf, opts, selected)
		return buf.Bytes(), nil
	case FormatJSON:
		b, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
