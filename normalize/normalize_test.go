package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/internacia/dataset/doc"
	"github.com/internacia/dataset/schema"
)

func record(t *testing.T, src string) *doc.Map {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	v, err := doc.Decode(&node)
	require.NoError(t, err)
	m, ok := v.(*doc.Map)
	require.True(t, ok, "test document must be a mapping")
	return m
}

func intblocks(t *testing.T) *schema.Table {
	t.Helper()
	tbl, err := schema.ForCategory(schema.Intblocks)
	require.NoError(t, err)
	return tbl
}

func get(t *testing.T, m *doc.Map, key string) interface{} {
	t.Helper()
	v, ok := m.Get(key)
	require.True(t, ok, "expected key %q", key)
	return v
}

func TestBooleanToTextCoercion(t *testing.T) {
	tbl := intblocks(t)

	in := record(t, "id: EFTA\nstatus: false\ndescription: true\nfounded: null\n")
	out := Record(in, tbl)

	assert.Equal(t, "no", get(t, out, "status"))
	assert.Equal(t, "yes", get(t, out, "description"))
	assert.Equal(t, "", get(t, out, "founded"))
}

func TestPartOfNormalization(t *testing.T) {
	tbl := intblocks(t)

	cases := []struct {
		name string
		src  string
		want []interface{}
	}{
		{"null becomes empty list", "id: X\npartof: null\n", []interface{}{}},
		{"string becomes singleton", "id: X\npartof: PARENT\n", []interface{}{"PARENT"}},
		{"mapping keys in order", "id: X\npartof:\n  UN: member\n  EU: observer\n", []interface{}{"UN", "EU"}},
		{"list unchanged", "id: X\npartof:\n  - UN\n  - EU\n", []interface{}{"UN", "EU"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Record(record(t, tc.src), tbl)
			assert.Equal(t, tc.want, get(t, out, "partof"))
		})
	}
}

func TestNestedCoercionIsRecursive(t *testing.T) {
	tbl := intblocks(t)

	src := `id: EX
translations:
  - lang: false
    name: X
includes:
  - id: NOR
    name: Norway
    joined: null
    role: false
links:
  - url: null
    type: false
headquarters:
  city: false
  country: null
  coordinates:
    lat: null
    lng: false
`
	out := Record(record(t, src), tbl)

	translations := get(t, out, "translations").([]interface{})
	tr := translations[0].(*doc.Map)
	lang, _ := tr.Get("lang")
	name, _ := tr.Get("name")
	assert.Equal(t, "no", lang)
	assert.Equal(t, "X", name)

	includes := get(t, out, "includes").([]interface{})
	member := includes[0].(*doc.Map)
	joined, _ := member.Get("joined")
	role, _ := member.Get("role")
	assert.Equal(t, "", joined)
	assert.Equal(t, "no", role)

	links := get(t, out, "links").([]interface{})
	link := links[0].(*doc.Map)
	url, _ := link.Get("url")
	typ, _ := link.Get("type")
	assert.Equal(t, "", url)
	assert.Equal(t, "no", typ)

	hq := get(t, out, "headquarters").(*doc.Map)
	city, _ := hq.Get("city")
	country, _ := hq.Get("country")
	assert.Equal(t, "no", city)
	assert.Equal(t, "", country)

	coords, _ := hq.Get("coordinates")
	lat, _ := coords.(*doc.Map).Get("lat")
	lng, _ := coords.(*doc.Map).Get("lng")
	assert.Equal(t, 0.0, lat)
	assert.Equal(t, 0.0, lng)
}

func TestStringListElementCoercion(t *testing.T) {
	tbl := intblocks(t)

	out := Record(record(t, "id: X\nlanguages:\n  - en\n  - false\n  - 12\n"), tbl)
	assert.Equal(t, []interface{}{"en", "no", "12"}, get(t, out, "languages"))
}

func TestUnknownFieldsPassThrough(t *testing.T) {
	tbl := intblocks(t)

	in := record(t, "id: X\nfuture_field: false\nnested_extra:\n  a: null\n")
	out := Record(in, tbl)

	// Unknown fields are never dropped and never coerced.
	assert.Equal(t, false, get(t, out, "future_field"))
	nested := get(t, out, "nested_extra").(*doc.Map)
	a, ok := nested.Get("a")
	assert.True(t, ok)
	assert.Nil(t, a)
}

func TestFieldOrderPreserved(t *testing.T) {
	tbl := intblocks(t)

	in := record(t, "name: Alpha\nid: A\nstatus: active\ncustom: 1\n")
	out := Record(in, tbl)
	assert.Equal(t, []string{"name", "id", "status", "custom"}, out.Keys())
}

func TestIdempotence(t *testing.T) {
	tbl := intblocks(t)

	src := `id: EX
status: false
name: null
partof: PARENT
translations:
  - lang: false
    name: X
languages:
  - false
headquarters:
  city: null
  coordinates:
    lat: false
`
	once := Record(record(t, src), tbl)
	twice := Record(once, tbl)
	assert.Equal(t, once, twice)
}

func TestPurity(t *testing.T) {
	tbl := intblocks(t)

	in := record(t, "id: X\nstatus: false\n")
	_ = Record(in, tbl)

	// The input record is untouched.
	status, _ := in.Get("status")
	assert.Equal(t, false, status)
}

func TestBlocktypesNarrowRules(t *testing.T) {
	tbl, err := schema.ForCategory(schema.Blocktypes)
	require.NoError(t, err)

	in := record(t, "id: false\nname: null\nother_names:\n  - lang: false\n    name: Unio\n")
	out := Record(in, tbl)

	assert.Equal(t, "no", get(t, out, "id"))
	assert.Equal(t, "", get(t, out, "name"))

	names := get(t, out, "other_names").([]interface{})
	lang, _ := names[0].(*doc.Map).Get("lang")
	assert.Equal(t, "no", lang)
}

func TestBlocktypesNullOtherNames(t *testing.T) {
	tbl, err := schema.ForCategory(schema.Blocktypes)
	require.NoError(t, err)

	out := Record(record(t, "id: union\nname: Union\nother_names: null\n"), tbl)
	assert.Equal(t, []interface{}{}, get(t, out, "other_names"))
}

func TestCountriesCoercion(t *testing.T) {
	tbl, err := schema.ForCategory(schema.Countries)
	require.NoError(t, err)

	src := `code: EX
name: Exland
capital_city:
  name: null
  lng: false
  lat: 1.5
native_names:
  exl:
    official: null
    common: Exland
`
	out := Record(record(t, src), tbl)

	capital := get(t, out, "capital_city").(*doc.Map)
	capName, _ := capital.Get("name")
	lng, _ := capital.Get("lng")
	lat, _ := capital.Get("lat")
	assert.Equal(t, "", capName)
	assert.Equal(t, 0.0, lng)
	assert.Equal(t, 1.5, lat)

	native := get(t, out, "native_names").(*doc.Map)
	exl, _ := native.Get("exl")
	official, _ := exl.(*doc.Map).Get("official")
	assert.Equal(t, "", official)
}

func TestBatchPreservesLength(t *testing.T) {
	tbl := intblocks(t)
	records := []*doc.Map{
		record(t, "id: A\n"),
		record(t, "id: B\nstatus: no\n"),
	}
	out := Batch(records, tbl)
	require.Len(t, out, 2)
}

func TestDuplicates(t *testing.T) {
	tbl := intblocks(t)
	records := []*doc.Map{
		record(t, "id: A\n"),
		record(t, "id: B\n"),
		record(t, "id: A\n"),
		record(t, "id: A\n"),
	}
	assert.Equal(t, []string{"A"}, Duplicates(records, tbl))
}
