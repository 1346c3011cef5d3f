package gdc

import (
	"encoding/json"
	"sort"
)

// Filter is a node in a GDC query filter tree. Filters marshal to the
// operator JSON the files, cases, and projects endpoints accept.
// See: https://docs.gdc.cancer.gov/API/Users_Guide/Search_and_Retrieval/#filters-specifying-the-query
type Filter interface {
	json.Marshaler
}

type operation struct {
	Op      string `json:"op"`
	Content any    `json:"content"`
}

type fieldValue struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Eq matches records whose field equals value.
type Eq struct {
	Field string
	Value string
}

func (f Eq) MarshalJSON() ([]byte, error) {
	return json.Marshal(operation{Op: "=", Content: fieldValue{Field: f.Field, Value: f.Value}})
}

// In matches records whose field is any of the values.
type In struct {
	Field  string
	Values []string
}

func (f In) MarshalJSON() ([]byte, error) {
	return json.Marshal(operation{Op: "in", Content: fieldValue{Field: f.Field, Value: f.Values}})
}

// And combines filters; a record must match all of them.
type And []Filter

func (f And) MarshalJSON() ([]byte, error) {
	content := make([]json.RawMessage, 0, len(f))
	for _, sub := range f {
		buf, err := sub.MarshalJSON()
		if err != nil {
			return nil, err
		}
		content = append(content, buf)
	}
	return json.Marshal(operation{Op: "and", Content: content})
}

// AndEq builds the common filter shape: every field/value pair becomes
// an equality condition and the conditions are AND-combined. Fields are
// ordered by name so the same conditions always marshal to the same
// bytes.
func AndEq(conditions map[string]string) And {
	fields := make([]string, 0, len(conditions))
	for field := range conditions {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	filter := make(And, 0, len(fields))
	for _, field := range fields {
		filter = append(filter, Eq{Field: field, Value: conditions[field]})
	}
	return filter
}
