package keypath_test

import (
	"testing"

	"github.com/0xalexb/jsonconfig/config/keypath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		expected keypath.Path
	}{
		{name: "single segment", path: "server", expected: keypath.Path{"server"}},
		{name: "nested", path: "server.tls.cert", expected: keypath.Path{"server", "tls", "cert"}},
		{name: "empty string", path: "", expected: keypath.Path{""}},
		{name: "leading dot kept", path: ".a", expected: keypath.Path{"", "a"}},
		{name: "trailing dot kept", path: "a.", expected: keypath.Path{"a", ""}},
		{name: "doubled dot kept", path: "a..b", expected: keypath.Path{"a", "", "b"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, keypath.Normalize(testCase.path))
		})
	}
}

func TestNormalize_SequencePassesThrough(t *testing.T) {
	t.Parallel()

	segments := []string{"a.b", "c"}
	require.Equal(t, keypath.Path{"a.b", "c"}, keypath.Normalize(segments))

	path := keypath.Path{"x", "y"}
	require.Equal(t, path, keypath.Normalize(path))
}

func TestNormalize_Equivalence(t *testing.T) {
	t.Parallel()

	segments := []string{"key2", "key4", "key5"}
	dotted := keypath.Path(segments).String()

	require.Equal(t, "key2.key4.key5", dotted)
	require.Equal(t, keypath.Normalize(segments), keypath.Normalize(dotted))
}

func TestPath_Join(t *testing.T) {
	t.Parallel()

	base := make(keypath.Path, 1, 4)
	base[0] = "a"

	first := base.Join("b")
	second := base.Join("c")

	assert.Equal(t, keypath.Path{"a", "b"}, first)
	assert.Equal(t, keypath.Path{"a", "c"}, second)
	assert.Equal(t, keypath.Path{"a"}, base)
}

func TestPath_Head(t *testing.T) {
	t.Parallel()

	head, rest := keypath.Path{"a", "b", "c"}.Head()
	assert.Equal(t, "a", head)
	assert.Equal(t, keypath.Path{"b", "c"}, rest)

	head, rest = keypath.Path{}.Head()
	assert.Empty(t, head)
	assert.Nil(t, rest)
}

func TestPath_Clone(t *testing.T) {
	t.Parallel()

	original := keypath.Path{"a", "b"}
	clone := original.Clone()
	clone[0] = "z"

	assert.Equal(t, keypath.Path{"a", "b"}, original)
	assert.Nil(t, keypath.Path(nil).Clone())
}
