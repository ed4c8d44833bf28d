package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record accessors. The driver returns strings, int64s and []any slices;
// these helpers coerce a named column and fall back to the zero value when
// the column is absent or null.

// StringValue returns the string column key of rec.
func StringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IntValue returns the integer column key of rec.
func IntValue(rec *neo4j.Record, key string) int64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	n, _ := v.(int64)
	return n
}

// StringsValue returns the collected string list column key of rec,
// dropping nulls.
func StringsValue(rec *neo4j.Record, key string) []string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MapsValue returns the collected map list column key of rec.
func MapsValue(rec *neo4j.Record, key string) []map[string]any {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	items, _ := v.([]any)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// NodeValue returns the node column key of rec.
func NodeValue(rec *neo4j.Record, key string) (neo4j.Node, bool) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return neo4j.Node{}, false
	}
	node, ok := v.(neo4j.Node)
	return node, ok
}
