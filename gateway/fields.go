package gateway

import (
	"net/url"
	"strings"
)

// FieldSet is an ordered mapping from wire field name to value, built
// fresh for every operation. Setting an existing key replaces its value
// but keeps its position.
type FieldSet struct {
	keys   []string
	values map[string]string
}

// NewFieldSet creates an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{values: make(map[string]string)}
}

// Set records a field value, preserving first-set ordering.
func (fs *FieldSet) Set(key, value string) {
	if _, ok := fs.values[key]; !ok {
		fs.keys = append(fs.keys, key)
	}
	fs.values[key] = value
}

// Get returns the value for key, or "" if unset.
func (fs *FieldSet) Get(key string) string {
	return fs.values[key]
}

// Len returns the number of fields, blank ones included.
func (fs *FieldSet) Len() int {
	return len(fs.keys)
}

// Encode serializes the field set as percent-encoded key=value pairs
// joined with "&". Fields with blank values are dropped, never sent as
// empty parameters.
func (fs *FieldSet) Encode() string {
	pairs := make([]string, 0, len(fs.keys))
	for _, key := range fs.keys {
		value := fs.values[key]
		if value == "" {
			continue
		}
		pairs = append(pairs, key+"="+url.QueryEscape(value))
	}
	return strings.Join(pairs, "&")
}
