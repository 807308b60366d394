package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"media-scraper/core/record"
)

const indent = "    "

// Encode serializes m the way entries are stored on disk.
func Encode(m record.Metadata) ([]byte, error) {
	if m == nil {
		m = record.Metadata{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(map[string]any(m)); err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w", err)
	}

	// Encoder always terminates with a newline, stored entries do not.
	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeSeparators writes U+2028 and U+2029 literally. encoding/json escapes
// them even with HTML escaping off.
func unescapeSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" {
			switch data[i+5] {
			case '8':
				out = append(out, "\u2028"...)
				i += 5
				continue
			case '9':
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// Other escapes are copied whole, so "\\u2028" stays as written.
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// decodeEntry parses stored content, reporting corrupt content instead of failing.
func decodeEntry(data []byte) (record.Metadata, bool) {
	m, err := record.Decode(data)
	if err != nil {
		return record.Metadata{}, true
	}
	return m, false
}
