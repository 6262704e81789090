package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// RawExport is the unstructured legacy export: one sheet per top-level key.
type RawExport map[string]*Sheet

// Sheet holds the records of a single spreadsheet tab from the legacy export.
type Sheet struct {
	Title   string `json:"title"`
	Records []Row  `json:"records"`
}

// Row is a single spreadsheet-shaped record. Cell values are usually strings
// but the export occasionally carries numbers, so access goes through Get.
type Row map[string]any

// Get returns the first non-empty cell among the given column names,
// stringified. Missing and null cells yield "".
func (r Row) Get(keys ...string) string {
	for _, key := range keys {
		if s := cellString(r[key]); s != "" {
			return s
		}
	}
	return ""
}

// Has reports whether the column is present at all, even when empty. Some
// skip rules distinguish "absent" from "present but falsy".
func (r Row) Has(key string) bool {
	_, ok := r[key]
	return ok
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// LoadRawExport reads the google-export database document and drops the
// sheets that never feed the import (scratch tabs).
func LoadRawExport(path string) (RawExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw export: %w", err)
	}

	var raw RawExport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse raw export: %w", err)
	}

	delete(raw, "test")
	delete(raw, "members")

	return raw, nil
}
