package cfg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tags are key=value pairs attached to every log line of a run. Tags
// implements flag.Value so it can be repeated on the command line.
type Tags map[string]string

func (t Tags) String() string {
	ts := make([]string, 0, len(t))
	for _, key := range t.keys() {
		ts = append(ts, fmt.Sprintf("-t %s=%s", key, strconv.Quote(t[key])))
	}
	return strings.Join(ts, " ")
}

func (t Tags) Set(s string) error {
	key, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected tags to have the format 'key=value'")
	}

	if key == "" || strings.Contains(key, " ") {
		return fmt.Errorf("keys must be non-empty and must not contain spaces")
	}

	if strings.HasPrefix(val, "\"") {
		var err error
		val, err = strconv.Unquote(val)
		if err != nil {
			return fmt.Errorf("failed to unquote value for tag %s", key)
		}
	}
	t[key] = val
	return nil
}

// KeyValues flattens the tags into alternating keys and values, sorted by key.
func (t Tags) KeyValues() []any {
	kvs := make([]any, 0, 2*len(t))
	for _, key := range t.keys() {
		kvs = append(kvs, key, t[key])
	}
	return kvs
}

func (t Tags) keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
