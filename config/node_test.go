package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/keypath"
	"github.com/0xalexb/jsonconfig/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsChildNodes(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())
	assert.Empty(t, cfg.Path())

	key1, err := cfg.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), key1)

	value, err := cfg.Get("key2")
	require.NoError(t, err)
	require.IsType(t, &config.Node{}, value)

	key2, _ := value.(*config.Node)
	assert.Equal(t, keypath.Path{"key2"}, key2.Path())

	key3, err := key2.Get("key3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), key3)

	value, err = key2.Get("key4")
	require.NoError(t, err)

	key4, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, keypath.Path{"key2", "key4"}, key4.Path())
}

func TestNew_AcceptsGoMapsAsNestedMappings(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{
		{Key: "server", Value: map[string]any{"port": int64(80), "host": "localhost"}},
	})

	value, err := cfg.Get("server")
	require.NoError(t, err)

	server, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, []string{"server.host", "server.port"}, collectKeys(server))
}

func TestNode_Get(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())

	testCases := []struct {
		name     string
		path     string
		expected any
	}{
		{name: "top level", path: "key1", expected: int64(1)},
		{name: "nested", path: "key2.key3", expected: int64(3)},
		{name: "deeply nested", path: "key2.key4.key5", expected: int64(5)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := cfg.Get(testCase.path)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, value)

			value, err = cfg.GetPath(keypath.Split(testCase.path))
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, value)
		})
	}
}

func TestNode_Get_NotFound(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())

	testCases := []struct {
		name    string
		path    string
		message string
	}{
		{name: "top level", path: "nokey", message: `no value exists for key "nokey"`},
		{name: "nested", path: "key2.nokey", message: `no value exists for key "key2.nokey"`},
		{name: "missing intermediate", path: "nokey.key3", message: `no value exists for key "nokey"`},
		{name: "through scalar", path: "key1.key2", message: `no value exists for key "key1.key2"`},
		{name: "malformed path", path: "key2..key3", message: `no value exists for key "key2."`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := cfg.Get(testCase.path)
			require.ErrorIs(t, err, config.ErrNotFound)
			assert.Nil(t, value)
			assert.EqualError(t, err, testCase.message)
		})
	}
}

func TestNode_GetPath_Empty(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())

	_, err := cfg.GetPath(nil)
	require.ErrorIs(t, err, config.ErrEmptyPath)
}

func TestNode_StrictAccess_OptionalFields(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument(),
		config.WithStrictAccess(true),
		config.WithOptionalFields("nokey", "key2.nokey2"),
		config.WithOptionalPaths(keypath.Path{"key2", "nokey"}),
	)

	for _, path := range []string{"nokey", "key2.nokey", "key2.nokey2"} {
		value, err := cfg.Get(path)
		require.NoError(t, err, path)
		assert.Nil(t, value, path)
	}

	_, err := cfg.Get("key2.nokey3")
	require.ErrorIs(t, err, config.ErrNotFound)
}

func TestNode_LenientAccess_RequiredFields(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument(),
		config.WithStrictAccess(false),
		config.WithRequiredFields("nokey", "key2.nokey2"),
		config.WithRequiredPaths(keypath.Path{"key2", "nokey"}),
	)

	value, err := cfg.Get("key2.nokey3")
	require.NoError(t, err)
	assert.Nil(t, value)

	for _, path := range []string{"nokey", "key2.nokey", "key2.nokey2"} {
		_, err := cfg.Get(path)
		require.ErrorIs(t, err, config.ErrNotFound, path)
	}
}

func TestNode_LenientAccess_MissingIntermediate(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument(), config.WithStrictAccess(false))

	value, err := cfg.Get("nokey.deeper")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestNode_RequiredWinsOverOptional(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument(),
		config.WithRequiredFields("both"),
		config.WithOptionalFields("both"),
	)

	_, err := cfg.Get("both")
	require.ErrorIs(t, err, config.ErrNotFound)
}

func TestNode_AccessIsInherited(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument(), config.WithStrictAccess(false))

	value, err := cfg.Get("key2")
	require.NoError(t, err)

	key2, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, config.AccessLenient, key2.Access())

	value, err = key2.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestNode_Contains(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{
		{Key: "key1", Value: int64(1)},
		{Key: "key2", Value: config.Mapping{
			{Key: "key3", Value: int64(3)},
			{Key: "key4", Value: config.Mapping{{Key: "key5", Value: int64(5)}}},
		}},
		{Key: "empty", Value: nil},
	})

	testCases := []struct {
		path     string
		expected bool
	}{
		{path: "key1", expected: true},
		{path: "key1.key2", expected: false},
		{path: "key2.key3", expected: true},
		{path: "key2.key4.key5", expected: true},
		{path: "key2.key4.key6", expected: false},
		{path: "b", expected: false},
		{path: "empty", expected: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, cfg.Contains(testCase.path))
		})
	}
}

func TestNode_Contains_OptionalMissingIsFalse(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "a", Value: int64(1)}}, config.WithOptionalFields("b"))

	value, err := cfg.Get("b")
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.False(t, cfg.Contains("b"))
}

func TestNode_Update(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())

	require.NoError(t, cfg.Update("key1", int64(2), false))
	assertValue(t, cfg.Node, "key1", int64(2))

	require.NoError(t, cfg.Update("key1", config.Mapping{{Key: "newkey", Value: int64(1)}}, false))

	value, err := cfg.Get("key1")
	require.NoError(t, err)

	key1, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, keypath.Path{"key1"}, key1.Path())
	assertValue(t, cfg.Node, "key1.newkey", int64(1))

	require.NoError(t, cfg.Update("key2.key4", int64(1337), false))
	assertValue(t, cfg.Node, "key2.key4", int64(1337))
}

func TestNode_Update_KeepsPosition(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())
	require.NoError(t, cfg.Update("key1", "replaced", false))

	assert.Equal(t, []string{"key1", "key2.key3", "key2.key4.key5"}, collectKeys(cfg.Node))
}

func TestNode_Update_Upsert(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "a", Value: int64(1)}})

	err := cfg.Update("b", "x", false)
	require.ErrorIs(t, err, config.ErrUpsertDisabled)
	assert.False(t, cfg.Contains("b"))

	require.NoError(t, cfg.Update("b", "x", true))
	assertValue(t, cfg.Node, "b", "x")
}

func TestNode_Update_NestedUpsert(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "a", Value: int64(1)}})

	err := cfg.Update("b.c", "x", false)
	require.ErrorIs(t, err, config.ErrNotFound)

	require.NoError(t, cfg.Update("b.c", "x", true))
	assertValue(t, cfg.Node, "b.c", "x")

	value, err := cfg.Get("b")
	require.NoError(t, err)

	b, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, keypath.Path{"b"}, b.Path())
}

func TestNode_Update_ThroughScalar(t *testing.T) {
	t.Parallel()

	cfg := config.New(testDocument())

	err := cfg.Update("key1.sub", "x", true)
	require.ErrorIs(t, err, config.ErrNotNode)
}

func TestNode_Update_ForwardsFieldsToNewChildren(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{}, config.WithOptionalFields("later.maybe"))

	require.NoError(t, cfg.Update("later.present", int64(1), true))

	value, err := cfg.Get("later.maybe")
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = cfg.Get("later.other")
	require.ErrorIs(t, err, config.ErrNotFound)
}

func TestNode_Update_CopiesForeignNodes(t *testing.T) {
	t.Parallel()

	source := config.New(config.Mapping{{Key: "inner", Value: config.Mapping{{Key: "v", Value: true}}}})
	target := config.New(config.Mapping{})

	inner, err := source.Get("inner")
	require.NoError(t, err)
	require.NoError(t, target.Update("outer.copied", inner, true))

	value, err := target.Get("outer.copied")
	require.NoError(t, err)

	copied, ok := value.(*config.Node)
	require.True(t, ok)
	assert.Equal(t, keypath.Path{"outer", "copied"}, copied.Path())
	assertValue(t, target.Node, "outer.copied.v", true)
}

func TestNode_Update_NilNodes(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "key1", Value: int64(1)}}, config.WithStrictAccess(false))

	require.NoError(t, cfg.Update("node", (*config.Node)(nil), true))
	require.NoError(t, cfg.Update("root", (*config.Config)(nil), true))
	require.NoError(t, cfg.Update("empty", &config.Config{}, true))

	for _, key := range []string{"node", "root", "empty"} {
		value, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Nil(t, value, key)
	}

	json, err := cfg.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"key1":1,"node":null,"root":null,"empty":null}`, json)
}

func TestNode_Add(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "key1", Value: int64(1)}})

	_, err := cfg.Get("key2")
	require.ErrorIs(t, err, config.ErrNotFound)

	require.NoError(t, cfg.Add("key2", int64(2), true))
	assertValue(t, cfg.Node, "key2", int64(2))

	_, err = cfg.Get("key3.key4")
	require.ErrorIs(t, err, config.ErrNotFound)

	require.NoError(t, cfg.Add("key3.key4", "test", true))
	assertValue(t, cfg.Node, "key3.key4", "test")
}

func TestNode_Add_OverwriteWarning(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "WARN"}, &buf)
	cfg := config.New(config.Mapping{{Key: "key1", Value: int64(1)}}, config.WithLogger(logger))

	require.NoError(t, cfg.Add("key1", int64(2), false))
	assertValue(t, cfg.Node, "key1", int64(2))
	assert.Equal(t, 1, countLines(buf.String()))
	assert.Contains(t, buf.String(), `"path":"key1"`)

	require.NoError(t, cfg.Add("key1", int64(3), true))
	assertValue(t, cfg.Node, "key1", int64(3))
	assert.Equal(t, 1, countLines(buf.String()))

	require.NoError(t, cfg.Add("key1", int64(4), false))
	assertValue(t, cfg.Node, "key1", int64(4))
	assert.Equal(t, 2, countLines(buf.String()))

	require.NoError(t, cfg.Add("fresh", int64(5), false))
	assert.Equal(t, 2, countLines(buf.String()))
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	cfg := config.New(config.Mapping{{Key: "1", Value: int64(2)}, {Key: "3", Value: int64(4)}})

	assert.Equal(t,
		"Node(path=[], entries={1: 2, 3: 4}, strict_access=true, required_fields=[], optional_fields=[])",
		cfg.String(),
	)
}

func TestNode_String_Nested(t *testing.T) {
	t.Parallel()

	cfg := config.New(
		config.Mapping{
			{Key: "name", Value: "app"},
			{Key: "db", Value: config.Mapping{{Key: "port", Value: nil}}},
		},
		config.WithStrictAccess(false),
		config.WithRequiredFields("db.port"),
	)

	assert.Equal(t,
		`Node(path=[], entries={name: "app", db: Node(path=[db], entries={port: null}, strict_access=false, `+
			`required_fields=[port], optional_fields=[])}, strict_access=false, required_fields=[db.port], optional_fields=[])`,
		cfg.String(),
	)
}

func assertValue(t *testing.T, node *config.Node, path string, expected any) {
	t.Helper()

	value, err := node.Get(path)
	require.NoError(t, err)
	assert.Equal(t, expected, value)
}

func countLines(output string) int {
	return strings.Count(output, "\n")
}

func collectKeys(node *config.Node) []string {
	var keys []string
	for key := range node.Keys() {
		keys = append(keys, key)
	}

	return keys
}
