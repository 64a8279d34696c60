package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_Sample(t *testing.T) {
	t.Parallel()

	out, err := write(sample(), "compact", "")
	require.NoError(t, err)
	assert.Equal(t, `{ "Foo": 42, "Bar": "Hello, World!", "Baz": [{ "A": 43, "B": "Goodbye, World!", "C": null}, 44]}`+"\n", out)

	out, err = write(sample(), "json", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Foo":42,"Bar":"Hello, World!","Baz":[{"A":43,"B":"Goodbye, World!","C":null},44]}`, out)

	_, err = write(sample(), "xml", "")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yml")
	require.NoError(t, os.WriteFile(path, []byte("b: 1\na: [x, ~]\n"), 0o600))

	res := load(path)
	require.True(t, res.IsSuccess(), "%v", res.Err())
	assert.Equal(t, `{ "b": 1, "a": ["x", null]}`, res.Result().String())

	missing := load(filepath.Join(dir, "missing.json"))
	assert.True(t, missing.IsFailure())

	assert.True(t, load("").IsSuccess())
}
