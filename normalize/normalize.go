// Package normalize coerces loosely-typed corpus records into their
// declared schema before any record reaches export.
//
// The rules repair known authoring defects deterministically: locale codes
// and flags sometimes arrive as real booleans (YAML 1.1 tooling resolves
// unquoted "yes"/"no" that way), optional fields are written as nulls, and
// the part-of relation appears as a string, a mapping or a list depending
// on the author. One generic recursive walker applies
// the per-field rules declared in the schema registry, so adding a field is
// a schema change, not new code here.
//
// Normalization is pure and idempotent: "yes", "no", "" and 0.0 are
// themselves valid under every rule, so normalize(normalize(x)) ==
// normalize(x). Field order, list order and unknown fields are preserved.
package normalize

import (
	"strconv"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/schema"
)

// Batch normalizes every record of a batch against its table. The input
// records are not mutated.
func Batch(records []*doc.Map, table *schema.Table) []*doc.Map {
	out := make([]*doc.Map, len(records))
	for i, record := range records {
		out[i] = Record(record, table)
	}
	return out
}

// Record returns a normalized deep copy of one record.
func Record(record *doc.Map, table *schema.Table) *doc.Map {
	out := doc.Clone(record).(*doc.Map)
	applyFields(out, table.Fields)
	return out
}

func applyFields(m *doc.Map, fields []schema.Field) {
	for _, f := range fields {
		v, ok := m.Get(f.Name)
		if !ok {
			continue // absent fields stay absent
		}
		m.Set(f.Name, coerce(v, f))
	}
}

func coerce(v interface{}, f schema.Field) interface{} {
	switch f.Kind {
	case schema.KindString:
		if f.Rule == schema.RuleText {
			return coerceText(v)
		}
		return v

	case schema.KindFloat64:
		if f.Rule == schema.RuleCoord {
			return coerceCoord(v)
		}
		return v

	case schema.KindStringList:
		if f.Rule == schema.RulePartOf {
			return coercePartOf(v)
		}
		if f.Rule == schema.RuleText {
			return coerceTextList(v)
		}
		return v

	case schema.KindStructList:
		return coerceStructList(v, f.Sub)

	case schema.KindStruct:
		if sub, ok := v.(*doc.Map); ok {
			applyFields(sub, f.Sub)
		}
		return v

	case schema.KindMapOfStruct:
		if m, ok := v.(*doc.Map); ok {
			for _, key := range m.Keys() {
				if sub, ok2 := valueMap(m, key); ok2 {
					applyFields(sub, f.Sub)
				}
			}
		}
		return v

	default:
		return v
	}
}

func valueMap(m *doc.Map, key string) (*doc.Map, bool) {
	v, _ := m.Get(key)
	sub, ok := v.(*doc.Map)
	return sub, ok
}

// coerceText enforces the text invariant: booleans become "yes"/"no",
// nulls become "". Everything else passes through.
func coerceText(v interface{}) interface{} {
	switch val := v.(type) {
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case nil:
		return ""
	default:
		return v
	}
}

// coerceCoord enforces the numeric coordinate invariant: booleans and
// nulls become 0.0.
func coerceCoord(v interface{}) interface{} {
	switch v.(type) {
	case bool, nil:
		return 0.0
	default:
		return v
	}
}

// coerceTextList applies the text rule per element and stringifies
// non-string scalars. A null list becomes an empty list.
func coerceTextList(v interface{}) interface{} {
	if v == nil {
		return []interface{}{}
	}
	list, ok := v.([]interface{})
	if !ok {
		return v
	}
	out := make([]interface{}, len(list))
	for i, elem := range list {
		out[i] = stringify(elem)
	}
	return out
}

// coerceStructList applies the nested field rules to each mapping element.
// A null list becomes an empty list; non-mapping elements pass through.
func coerceStructList(v interface{}, sub []schema.Field) interface{} {
	if v == nil {
		return []interface{}{}
	}
	list, ok := v.([]interface{})
	if !ok {
		return v
	}
	for _, elem := range list {
		if m, ok := elem.(*doc.Map); ok {
			applyFields(m, sub)
		}
	}
	return list
}

// coercePartOf normalizes the part-of relation to a list of identifier
// strings regardless of how the source expressed it.
func coercePartOf(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return []interface{}{}
	case string:
		return []interface{}{val}
	case *doc.Map:
		out := make([]interface{}, 0, val.Len())
		for _, key := range val.Keys() {
			out = append(out, key)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, elem := range val {
			out[i] = stringify(elem)
		}
		return out
	default:
		return v
	}
}

// stringify renders a scalar as a string using the pipeline's text
// conventions.
func stringify(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return v
	}
}

// Duplicates returns the identifier values that occur more than once in a
// batch. Duplicate identity is a data-quality defect the pipeline reports
// but never resolves.
func Duplicates(records []*doc.Map, table *schema.Table) []string {
	seen := make(map[string]int)
	var dups []string
	for _, record := range records {
		v, ok := record.Get(table.Key)
		if !ok {
			continue
		}
		id, ok := v.(string)
		if !ok {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}
