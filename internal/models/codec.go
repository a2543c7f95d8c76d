package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeObject decodes a JSON object keeping numbers as json.Number.
func decodeObject(data []byte, what string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%s must be a JSON object", what)
	}
	return raw, nil
}

// The take helpers move a member out of fields when it has the wanted type
// and leave it in place otherwise.

func takeString(fields map[string]any, key string) (string, bool) {
	s, ok := fields[key].(string)
	if ok {
		delete(fields, key)
	}
	return s, ok
}

func takeInt64(fields map[string]any, key string) (int64, bool) {
	n, ok := fields[key].(json.Number)
	if !ok {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil {
		return 0, false
	}
	delete(fields, key)
	return v, true
}

func takeFloat(fields map[string]any, key string) (float64, bool) {
	n, ok := fields[key].(json.Number)
	if !ok {
		return 0, false
	}
	v, err := n.Float64()
	if err != nil {
		return 0, false
	}
	delete(fields, key)
	return v, true
}

// member is a typed property written over the pass-through fields.
type member struct {
	key   string
	value any
	zero  bool
}

// encodeObject writes fields with the typed members laid over them. A zero
// member yields to a value kept under the same key in fields.
func encodeObject(fields map[string]any, members ...member) ([]byte, error) {
	out := make(map[string]any, len(fields)+len(members))
	for k, v := range fields {
		out[k] = v
	}
	for _, m := range members {
		if _, kept := fields[m.key]; kept && m.zero {
			continue
		}
		out[m.key] = m.value
	}
	return json.Marshal(out)
}

func emptyToNil(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return nil
	}
	return fields
}
