package logging

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type encoder func(LogEntry) []byte

func encodeJSON(e LogEntry) []byte {
	data, err := json.Marshal(e)
	if err != nil {
		// Unmarshalable field values degrade to text rather than dropping the line
		return encodeText(LogEntry{
			Time:    e.Time,
			Level:   e.Level,
			Message: e.Message,
			Fields:  map[string]any{"marshal_error": err.Error()},
		})
	}
	return append(data, '\n')
}

func encodeText(e LogEntry) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", e.Time, e.Level, e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, " %s=%s", k, textValue(e.Fields[k]))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func textValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
