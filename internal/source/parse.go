package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/models"
)

var errTrailingData = errors.New("unexpected data after JSON object")

// ParseRecords decodes newline delimited JSON objects. Lines holding only whitespace are
// skipped, which tolerates a trailing newline and CRLF endings. A line that is valid JSON
// but not an object yields a nil record, left for validation to reject. A single line
// that is not valid JSON fails the whole call.
func ParseRecords(content string) ([]models.Record, error) {
	lines := strings.Split(content, "\n")
	records := make([]models.Record, 0, len(lines))

	for idx, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, idx+1, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func decodeLine(line string) (models.Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, nil
	}

	return models.Record(obj), nil
}
