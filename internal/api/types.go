// ABOUTME: Wire-level types shared across resources
// ABOUTME: Normalizes loosely-typed backend fields into stable Go shapes

package api

import (
	"encoding/json"
	"strings"
)

// ID is a server-assigned identifier. The backend is inconsistent about
// whether ids arrive as JSON strings or numbers, so both are accepted and
// normalized to a string.
type ID string

// UnmarshalJSON accepts a JSON string or number. A null id reads as
// empty rather than failing the surrounding collection decode.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// StringList is an ordered list that the backend may serialize either as a
// JSON array or as a comma-joined string. It always marshals as an array.
type StringList []string

// UnmarshalJSON accepts ["a","b"] or "a, b".
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = SplitList(joined)
	return nil
}

// Join serializes the list the way the backend expects it on the wire.
func (l StringList) Join() string {
	return strings.Join(l, ",")
}

// SplitList splits a comma-joined string into an ordered list with
// whitespace trimmed and empty segments dropped.
func SplitList(s string) StringList {
	parts := strings.Split(s, ",")
	out := make(StringList, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
