package deep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func people() []any {
	return []any{
		Object{"name": "ada", "age": 36.0, "active": true, "address": Object{"city": "london", "zip": "n1"}},
		Object{"name": "alan", "age": 41.0, "active": false, "address": Object{"city": "wilmslow"}},
		Object{"name": "grace", "age": 36.0, "active": true, "address": Object{"city": "new york"}},
		"not a record",
	}
}

func TestToObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Object{"a": 1, "2": "b"}, ToObject([]any{"a", 1, 2, "b", "dangling"}))
	assert.Equal(t, Object{}, ToObject(nil))
}

func TestExtend(t *testing.T) {
	t.Parallel()

	target := Object{"a": 1, "b": 2}
	got := Extend(target, Object{"b": 3}, Object{"c": 4})

	assert.Equal(t, Object{"a": 1, "b": 3, "c": 4}, got)
	assert.Equal(t, got, target, "extend mutates its target")
}

func TestDeepExtend(t *testing.T) {
	t.Parallel()

	src := Object{"cfg": Object{"port": 80, "tls": Object{"on": true}}, "tags": []any{"x"}}
	target := Object{"cfg": Object{"host": "h", "port": 1}}

	got := DeepExtend(target, src)
	assert.Equal(t, Object{
		"cfg":  Object{"host": "h", "port": 80, "tls": Object{"on": true}},
		"tags": []any{"x"},
	}, got)

	got["tags"].([]any)[0] = "changed"
	got["cfg"].(Object)["tls"].(Object)["on"] = false
	assert.Equal(t, "x", src["tags"].([]any)[0])
	assert.Equal(t, true, src["cfg"].(Object)["tls"].(Object)["on"])

	assert.Equal(t, Object{"a": Object{"b": 1}}, DeepExtend(nil, Object{"a": Object{"b": 1}}))
}

func TestDeepClone(t *testing.T) {
	t.Parallel()

	orig := Object{"list": []any{Object{"k": 1}}, "n": 2}
	clone := DeepClone(orig).(Object)
	require.Equal(t, orig, clone)

	clone["list"].([]any)[0].(Object)["k"] = 99
	assert.Equal(t, 1, orig["list"].([]any)[0].(Object)["k"])
	assert.Equal(t, "scalar", DeepClone("scalar"))
}

func TestIteration(t *testing.T) {
	t.Parallel()

	obj := Object{"b": 2, "a": 1, "c": 3}

	keys := ForOwn("", func(acc string, k string, _ any, _ int) string { return acc + k }, obj)
	assert.Equal(t, "abc", keys)
	assert.Equal(t, []any{1, 2, 3}, Values(obj))
	assert.Equal(t, [][]any{{"a", 1}, {"b", 2}, {"c", 3}}, Pairs(obj))

	ks, vs := UnzipObject(obj)
	assert.Equal(t, []string{"a", "b", "c"}, ks)
	assert.Equal(t, []any{1, 2, 3}, vs)

	assert.Equal(t, Object{"x": 1, "y": nil}, ZipObject([]any{"x", "y"}, []any{1}))
	assert.Equal(t, Object{"x": 1}, ZipObject([]any{"x"}, []any{1, 2}))
}

func TestPluck(t *testing.T) {
	t.Parallel()

	doc := Object{"users": []any{Object{"name": "ada"}, Object{"name": "alan"}}}

	assert.Equal(t, "alan", Pluck("users.1.name", doc))
	assert.Nil(t, Pluck("users.5.name", doc))
	assert.Nil(t, Pluck("users.x", doc))
	assert.Nil(t, Pluck("users.0.name.first", doc))
	assert.Equal(t, doc["users"], Pluck("users", doc))
}

func TestDeepPluck(t *testing.T) {
	t.Parallel()

	root := Object{"id": "root"}
	mid := Object{"id": "mid", "parent": root}
	leaf := Object{"id": "leaf", "parent": mid}

	assert.Equal(t, []any{mid, root}, DeepPluck("parent", leaf))
	assert.Equal(t, []any{}, DeepPluck("parent", root))
}

func TestWhere(t *testing.T) {
	t.Parallel()

	xs := people()

	active := Where(Object{"active": true, "age": 36}, xs)
	require.Len(t, active, 2)
	assert.Equal(t, "ada", active[0].(Object)["name"])
	assert.Equal(t, "grace", active[1].(Object)["name"])

	assert.Empty(t, Where(Object{"address": Object{"city": "london"}}, xs),
		"shallow match compares nested records whole")
	assert.Len(t, Where(Object{}, xs), 3)
}

func TestDeepWhere(t *testing.T) {
	t.Parallel()

	got := DeepWhere(Object{"address": Object{"city": "london"}}, people())
	require.Len(t, got, 1)
	assert.Equal(t, "ada", got[0].(Object)["name"])

	assert.Empty(t, DeepWhere(Object{"address": Object{"country": "uk"}}, people()))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(36, 36.0))
	assert.True(t, Equal(uint8(3), int64(3)))
	assert.False(t, Equal(36, "36"))
	assert.True(t, Equal([]any{1, "a"}, []any{1, "a"}))
	assert.False(t, Equal(nil, 0))
	assert.True(t, Equal(nil, nil))
}
