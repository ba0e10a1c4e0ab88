// Package schema is the registry for the three dataset categories.
//
// Each category is declared once as a Table: an ordered list of Field specs
// carrying both the primitive type (for the columnar and relational layout)
// and the coercion rule the normalizer applies. The typed row structs in
// rows.go mirror the Tables field-for-field, so the thing that gets cleaned
// and the thing that gets written can never drift apart.
package schema

import (
	"github.com/internacia/dataset/errors"
)

// Category names. These are also the relational table names.
const (
	Countries  = "countries"
	Intblocks  = "intblocks"
	Blocktypes = "blocktypes"
)

// Kind is the declared primitive type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt64
	KindFloat64
	KindBool
	KindStringList
	KindStructList
	KindStruct
	KindMapOfStruct
)

// Rule is the coercion the normalizer applies to a field.
type Rule int

const (
	// RuleNone leaves the field untouched.
	RuleNone Rule = iota

	// RuleText rewrites booleans to "yes"/"no" and nulls to "". On list
	// fields the rule applies per element, stringifying non-strings.
	RuleText

	// RuleCoord rewrites booleans and nulls to 0.0.
	RuleCoord

	// RulePartOf normalizes the part-of relation to a list of identifier
	// strings: null → [], "X" → ["X"], mapping → its keys in order,
	// list → stringified list.
	RulePartOf
)

// Field declares one column of a category.
type Field struct {
	Name string
	Kind Kind
	Rule Rule
	// Sub holds the element fields of struct, struct-list and
	// map-of-struct kinds.
	Sub []Field
}

// Table declares one category: its name, identifier field and ordered
// field set.
type Table struct {
	Name   string
	Key    string
	Fields []Field
}

// Field returns the declared field with the given name, if any.
func (t *Table) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Declaration helpers. Text-typed fields default to RuleText because the
// corpus invariant (no boolean, no null where text is declared) holds for
// every category.
func text(name string) Field       { return Field{Name: name, Kind: KindString, Rule: RuleText} }
func i64(name string) Field        { return Field{Name: name, Kind: KindInt64} }
func f64(name string) Field        { return Field{Name: name, Kind: KindFloat64} }
func coord(name string) Field      { return Field{Name: name, Kind: KindFloat64, Rule: RuleCoord} }
func boolean(name string) Field    { return Field{Name: name, Kind: KindBool} }
func textList(name string) Field   { return Field{Name: name, Kind: KindStringList, Rule: RuleText} }
func structField(name string, sub ...Field) Field {
	return Field{Name: name, Kind: KindStruct, Sub: sub}
}
func structList(name string, sub ...Field) Field {
	return Field{Name: name, Kind: KindStructList, Sub: sub}
}
func mapOfStruct(name string, sub ...Field) Field {
	return Field{Name: name, Kind: KindMapOfStruct, Sub: sub}
}

var countriesTable = &Table{
	Name: Countries,
	Key:  "code",
	Fields: []Field{
		text("code"),
		text("name"),
		text("iso3code"),
		structField("capital_city", text("name"), coord("lng"), coord("lat")),
		structField("region", text("id"), text("value")),
		structField("adminregion", text("id"), text("value")),
		structField("incomeLevel", text("id"), text("value")),
		structField("lendingType", text("id"), text("value")),
		text("numeric_code"),
		text("wikidata_id"),
		text("official_name"),
		structList("languages", text("code"), text("name"), boolean("official")),
		structList("currencies", text("code"), text("name"), text("symbol")),
		boolean("un_member"),
		boolean("independent"),
		text("subregion"),
		textList("continents"),
		textList("borders"),
		boolean("landlocked"),
		text("tld"),
		textList("calling_codes"),
		text("flag_emoji"),
		text("car_side"),
		text("start_of_week"),
		structField("demonyms", text("female"), text("male")),
		text("m49_code"),
		i64("population"),
		f64("area"),
		structField("gini", i64("year"), f64("value")),
		textList("timezones"),
		mapOfStruct("native_names", text("official"), text("common")),
		structList("other_names", text("id"), text("name")),
		textList("common_names"),
	},
}

var intblocksTable = &Table{
	Name: Intblocks,
	Key:  "id",
	Fields: []Field{
		text("id"),
		textList("blocktype"),
		text("status"),
		text("name"),
		textList("languages"),
		structList("links", text("url"), text("type")),
		structList("translations", text("lang"), text("name")),
		text("founded"),
		text("geographic_scope"),
		textList("regions"),
		structList("includes",
			text("id"), text("name"), text("type"), text("status"),
			text("joined"), text("role"), text("note")),
		i64("membership_count"),
		text("wikidata_id"),
		text("legal_status"),
		text("description"),
		textList("tags"),
		structList("topics", text("key"), text("name")),
		structField("headquarters",
			text("city"), text("country"),
			structField("coordinates", coord("lat"), coord("lng"))),
		structList("acronyms", text("lang"), text("value")),
		Field{Name: "partof", Kind: KindStringList, Rule: RulePartOf},
		text("dissolved"),
		text("predecessor"),
		text("successor"),
		structList("other_names", text("id"), text("name")),
	},
}

var blocktypesTable = &Table{
	Name: Blocktypes,
	Key:  "id",
	Fields: []Field{
		text("id"),
		text("name"),
		structList("other_names", text("lang"), text("name")),
	},
}

// Tables returns all category tables in pipeline order.
func Tables() []*Table {
	return []*Table{countriesTable, intblocksTable, blocktypesTable}
}

// ForCategory looks up the table for a category name.
func ForCategory(name string) (*Table, error) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, errors.Newf("unknown category: %s", name)
}
