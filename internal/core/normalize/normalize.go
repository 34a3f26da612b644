// internal/core/normalize/normalize.go

// Package normalize flattens arbitrary upstream JSON list responses into a
// uniform table shape. The upstream commerce API nests list payloads under a
// handful of conventional wrapper keys and reports errors through several
// competing field names; until a typed contract is fixed, this package is the
// single place where that guessing happens.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// wrapperKeys are the conventional field names upstream responses nest list
// payloads under, in lookup order.
var wrapperKeys = []string{"record", "records", "data", "items", "results", "list", "rows"}

// totalKeys are the field names the total row count may be reported under.
var totalKeys = []string{"total_count", "totalCount", "total", "count"}

// Row is one normalized table row.
type Row = map[string]any

// Result is the uniform table shape handed to the dashboard.
type Result struct {
	Data       []Row          `json:"data"`
	TotalCount int            `json:"total_count"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Options controls optional reshaping of the located rows.
type Options struct {
	// Rename maps source field names to target field names.
	Rename map[string]string
	// Transform rewrites individual field values after renaming.
	Transform map[string]func(any) any
	// Filter keeps only rows it returns true for.
	Filter func(Row) bool
	// SortBy orders rows by the named field; strings and numbers compare
	// naturally, everything else by its JSON rendering.
	SortBy   string
	SortDesc bool
	// Strict makes MapToTable return an error when no array can be located
	// instead of returning an empty result.
	Strict bool
}

// MapToTable parses raw JSON and normalizes it. It never returns an error
// unless the input is not JSON at all or Strict is set and no array is found.
func MapToTable(raw []byte, opts Options) (Result, error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Result{Data: []Row{}}, fmt.Errorf("response is not valid JSON: %w", err)
	}
	return FromParsed(payload, opts)
}

// FromParsed normalizes an already-decoded JSON value.
func FromParsed(payload any, opts Options) (Result, error) {
	result := Result{Data: []Row{}}

	var envelope map[string]any
	switch v := payload.(type) {
	case []any:
		result.Data = toRows(v)
		result.Success = true
	case map[string]any:
		envelope = v
		rows, found := locateArray(v)
		if found {
			result.Data = toRows(rows)
		} else if opts.Strict {
			return result, fmt.Errorf("no list payload found under wrapper keys %v", wrapperKeys)
		}
		result.Success, result.Error = statusOf(v)
		result.Meta = metaOf(v)
	default:
		if opts.Strict {
			return result, fmt.Errorf("unsupported payload type %T", payload)
		}
	}

	applyReshaping(&result, opts)

	result.TotalCount = len(result.Data)
	if envelope != nil {
		if total, ok := totalOf(envelope); ok {
			result.TotalCount = total
		}
	}

	return result, nil
}

// locateArray finds the first array under the conventional wrapper keys,
// descending one level when a wrapper holds another envelope (data.items).
func locateArray(envelope map[string]any) ([]any, bool) {
	for _, key := range wrapperKeys {
		value, ok := envelope[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case []any:
			return v, true
		case map[string]any:
			if nested, found := locateArray(v); found {
				return nested, true
			}
		}
	}
	return nil, false
}

// toRows keeps object elements and drops scalars; a list of scalars is not a
// table.
func toRows(items []any) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			rows = append(rows, obj)
		}
	}
	return rows
}

// statusOf derives success and the error message from the envelope's status
// fields. Absent any signal the response counts as successful.
func statusOf(envelope map[string]any) (bool, string) {
	success := true

	if v, ok := envelope["success"].(bool); ok {
		success = v
	}
	if code, ok := numberOf(envelope["status_code"]); ok {
		success = success && code >= 200 && code < 300
	} else if code, ok := numberOf(envelope["status"]); ok {
		success = success && code >= 200 && code < 300
	} else if s, ok := envelope["status"].(string); ok {
		switch strings.ToLower(s) {
		case "error", "failed", "failure":
			success = false
		}
	}

	if success {
		return true, ""
	}

	for _, key := range []string{"message", "error", "detail"} {
		if msg, ok := envelope[key].(string); ok && msg != "" {
			return false, msg
		}
	}
	return false, "request failed"
}

// metaOf collects the scalar envelope fields that aren't the payload itself.
func metaOf(envelope map[string]any) map[string]any {
	meta := make(map[string]any)
	for key, value := range envelope {
		switch value.(type) {
		case []any, map[string]any:
			continue
		}
		meta[key] = value
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

func totalOf(envelope map[string]any) (int, bool) {
	for _, key := range totalKeys {
		if n, ok := numberOf(envelope[key]); ok {
			return int(n), true
		}
	}
	// Pagination blocks sometimes carry the total.
	if meta, ok := envelope["meta"].(map[string]any); ok {
		return totalOf(meta)
	}
	if p, ok := envelope["pagination"].(map[string]any); ok {
		return totalOf(p)
	}
	return 0, false
}

func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func applyReshaping(result *Result, opts Options) {
	if len(opts.Rename) > 0 {
		for _, row := range result.Data {
			for from, to := range opts.Rename {
				if value, ok := row[from]; ok {
					delete(row, from)
					row[to] = value
				}
			}
		}
	}

	if len(opts.Transform) > 0 {
		for _, row := range result.Data {
			for field, fn := range opts.Transform {
				if value, ok := row[field]; ok {
					row[field] = fn(value)
				}
			}
		}
	}

	if opts.Filter != nil {
		kept := result.Data[:0]
		for _, row := range result.Data {
			if opts.Filter(row) {
				kept = append(kept, row)
			}
		}
		result.Data = kept
	}

	if opts.SortBy != "" {
		sortRows(result.Data, opts.SortBy, opts.SortDesc)
	}
}

func sortRows(rows []Row, field string, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		less := compareValues(rows[i][field], rows[j][field])
		if desc {
			return !less && !equalValues(rows[i][field], rows[j][field])
		}
		return less
	})
}

func compareValues(a, b any) bool {
	af, aok := numberOf(a)
	bf, bok := numberOf(b)
	if aok && bok {
		return af < bf
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as < bs
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func equalValues(a, b any) bool {
	return !compareValues(a, b) && !compareValues(b, a)
}
