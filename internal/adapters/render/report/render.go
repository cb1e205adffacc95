package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/studio-autostop/internal/application"
	toml "github.com/pelletier/go-toml/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatTOML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or toml)", ErrUnsupportedFormat, raw)
	}
}

// Render returns the report in the requested format without a trailing
// newline.
func Render(report application.Report, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return renderText(report)
	case FormatJSON:
		payload, err := json.MarshalIndent(toDocument(report), "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json report: %w", err)
		}
		return string(payload), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(toDocument(report)); err != nil {
			return "", fmt.Errorf("encode toml report: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}
