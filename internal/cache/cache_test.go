package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

func openCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestKey(t *testing.T) {
	src := []byte("contract A {}")
	rules := []string{"storage-read-in-loop", "public-vs-external"}

	assert.Equal(t, Key(src, rules), Key(src, rules))
	assert.Len(t, Key(src, rules), 64)
	assert.NotEqual(t, Key(src, rules), Key(src, rules[:1]), "rule set is part of the key")
	assert.NotEqual(t, Key(src, rules), Key([]byte("contract B {}"), rules))
}

func TestGetPut(t *testing.T) {
	c := openCache(t)
	key := Key([]byte("contract A {}"), []string{"use-custom-errors"})

	_, ok, err := c.Get(key, "a.sol")
	require.NoError(t, err)
	assert.False(t, ok)

	stored := issue.NewResult("a.sol", []issue.Issue{
		{Type: issue.UseCustomErrors, Severity: issue.Medium, Line: 3, Column: 9, Message: "use a custom error"},
	})
	require.NoError(t, c.Put(key, stored))

	got, ok, err := c.Get(key, "copy/a.sol")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "copy/a.sol", got.File)
	assert.Equal(t, stored.Issues, got.Issues)
	assert.Equal(t, stored.Summary, got.Summary)
}

func TestPutReplaces(t *testing.T) {
	c := openCache(t)
	key := Key([]byte("x"), nil)

	require.NoError(t, c.Put(key, issue.NewResult("x.sol", nil)))
	require.NoError(t, c.Put(key, issue.NewResult("x.sol", []issue.Issue{{Type: issue.Other, Severity: issue.Low}})))

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, ok, err := c.Get(key, "x.sol")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got.Issues, 1)
}
