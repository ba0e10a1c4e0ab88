package schema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 3)
	assert.Equal(t, Countries, tables[0].Name)
	assert.Equal(t, Intblocks, tables[1].Name)
	assert.Equal(t, Blocktypes, tables[2].Name)
}

func TestForCategory(t *testing.T) {
	tbl, err := ForCategory(Intblocks)
	require.NoError(t, err)
	assert.Equal(t, Intblocks, tbl.Name)

	_, err = ForCategory("planets")
	assert.Error(t, err)
}

func TestFieldLookup(t *testing.T) {
	tbl, err := ForCategory(Intblocks)
	require.NoError(t, err)

	f, ok := tbl.Field("partof")
	require.True(t, ok)
	assert.Equal(t, KindStringList, f.Kind)
	assert.Equal(t, RulePartOf, f.Rule)

	_, ok = tbl.Field("no_such_field")
	assert.False(t, ok)
}

func TestBlocktypesNarrowRuleSet(t *testing.T) {
	tbl, err := ForCategory(Blocktypes)
	require.NoError(t, err)
	require.Len(t, tbl.Fields, 3)
	assert.Equal(t, "id", tbl.Fields[0].Name)
	assert.Equal(t, "name", tbl.Fields[1].Name)
	assert.Equal(t, "other_names", tbl.Fields[2].Name)
}

// TestRowsMirrorTables asserts the single-schema invariant: the typed row
// structs consumed by the exporter and materializer declare exactly the
// fields the Tables declare, in the same order, down to nested structs.
func TestRowsMirrorTables(t *testing.T) {
	rowTypes := map[string]reflect.Type{
		Countries:  reflect.TypeOf(Country{}),
		Intblocks:  reflect.TypeOf(Block{}),
		Blocktypes: reflect.TypeOf(BlockType{}),
	}

	for _, tbl := range Tables() {
		t.Run(tbl.Name, func(t *testing.T) {
			assertMirror(t, tbl.Name, tbl.Fields, rowTypes[tbl.Name])
		})
	}
}

func assertMirror(t *testing.T, path string, fields []Field, typ reflect.Type) {
	t.Helper()
	require.Equal(t, reflect.Struct, typ.Kind(), "%s: expected struct type, got %s", path, typ)
	require.Equal(t, len(fields), typ.NumField(), "%s: field count mismatch", path)

	for i, f := range fields {
		sf := typ.Field(i)
		tag := strings.Split(sf.Tag.Get("parquet"), ",")[0]
		assert.Equal(t, f.Name, tag, "%s: field %d parquet tag", path, i)

		jsonTag := strings.Split(sf.Tag.Get("json"), ",")[0]
		assert.Equal(t, f.Name, jsonTag, "%s: field %d json tag", path, i)

		switch f.Kind {
		case KindStruct, KindStructList, KindMapOfStruct:
			assertMirror(t, path+"."+f.Name, f.Sub, elemStruct(sf.Type))
		}
	}
}

// elemStruct unwraps pointers, slices and maps down to the element struct.
func elemStruct(typ reflect.Type) reflect.Type {
	for {
		switch typ.Kind() {
		case reflect.Ptr, reflect.Slice:
			typ = typ.Elem()
		case reflect.Map:
			typ = typ.Elem()
		default:
			return typ
		}
	}
}
