package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mesh-intelligence/itembridge/pkg/types"
)

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseInt32 parses a decimal command argument.
func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, userError(fmt.Errorf("invalid %s %q: must be a 32-bit integer", name, s))
	}
	return int32(v), nil
}

// formatProtocol renders a protocol with its canonical protocol when they
// differ.
func formatProtocol(raw, canonical types.Protocol) string {
	if raw == canonical {
		return raw.String()
	}
	return fmt.Sprintf("%s (as %s)", raw, canonical)
}
