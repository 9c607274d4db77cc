// Package input reads values to insert from a JSON-lines stream.
package input

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONLines reads one JSON value per line: either an integer or an array of
// integers. Blank lines are skipped.
type JSONLines struct {
	scanner *bufio.Scanner
	line    int
}

func NewJSONLines(r io.Reader) *JSONLines {
	return &JSONLines{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the values on the next non-blank line, or io.EOF once
// the stream is exhausted.
func (j *JSONLines) ReadLine() ([]int, error) {
	for j.scanner.Scan() {
		j.line++
		raw := strings.TrimSpace(j.scanner.Text())
		if raw == "" {
			continue
		}

		if strings.HasPrefix(raw, "[") {
			var values []int
			if err := json.Unmarshal([]byte(raw), &values); err != nil {
				return nil, fmt.Errorf("line %d: %w", j.line, err)
			}
			return values, nil
		}

		var value int
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("line %d: %w", j.line, err)
		}
		return []int{value}, nil
	}

	if err := j.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
