// Package csvmap decodes delimited text into header/row tuples and
// auto-detects the mapping between CSV columns and canonical student
// fields. Validation and committing belong to the import service; this
// package only shapes the raw input.
package csvmap

import (
	"encoding/csv"
	"io"
	"strings"
)

// CanonicalFields are the student field names a CSV column can bind to,
// in the order they appear in the mapping UI.
var CanonicalFields = []string{
	"roll", "name", "phone", "email",
	"batch", "branch", "course", "section",
	"year", "gender", "category",
	"motherName", "fatherName",
	"isLE", "isLeft", "isCR",
	"notes",
}

// FieldMapping maps a canonical field name to the source column header
// bound to it. An absent or empty entry means the field is unmapped.
type FieldMapping map[string]string

// Document is a decoded CSV file: the trimmed header list and one
// column→value map per non-blank data line.
type Document struct {
	Headers []string
	Rows    []map[string]string
}

// Parse reads CSV text into a Document. Quoted fields and escaped
// delimiters are honoured. Rows shorter than the header are padded with
// empty strings; rows longer than the header have trailing fields
// dropped. Lines that are entirely blank are skipped.
func Parse(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded below
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for _, record := range records {
		if blankRecord(record) {
			continue
		}
		if doc.Headers == nil {
			doc.Headers = trimAll(record)
			continue
		}
		row := make(map[string]string, len(doc.Headers))
		for i, header := range doc.Headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		doc.Rows = append(doc.Rows, row)
	}
	if doc.Headers == nil {
		doc.Headers = []string{}
	}
	return doc, nil
}

// DetectMapping scans the headers case-insensitively for a substring
// match of each canonical field name and binds the first header found.
// Fields with no matching header stay unmapped.
func DetectMapping(headers []string) FieldMapping {
	mapping := FieldMapping{}
	for _, field := range CanonicalFields {
		needle := strings.ToLower(field)
		for _, header := range headers {
			if strings.Contains(strings.ToLower(header), needle) {
				mapping[field] = header
				break
			}
		}
	}
	return mapping
}

// Merge overlays user-supplied bindings on top of an auto-detected
// mapping. Only known canonical fields are accepted; an explicit empty
// string unbinds a field.
func (m FieldMapping) Merge(overrides map[string]string) FieldMapping {
	merged := FieldMapping{}
	for k, v := range m {
		merged[k] = v
	}
	for _, field := range CanonicalFields {
		if v, ok := overrides[field]; ok {
			if v == "" {
				delete(merged, field)
			} else {
				merged[field] = v
			}
		}
	}
	return merged
}

// Value returns the raw cell bound to a canonical field for one row, or
// the empty string when the field is unmapped or the column is absent.
func (m FieldMapping) Value(row map[string]string, field string) string {
	header, ok := m[field]
	if !ok || header == "" {
		return ""
	}
	return row[header]
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func trimAll(record []string) []string {
	out := make([]string, len(record))
	for i, v := range record {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
