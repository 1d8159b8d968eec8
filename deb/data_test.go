package deb

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateArchive(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(writeTempFile(t, dir, "LICENSE", "Copyright\nMIT License\n"), "1")
	cfg.Assets = []Asset{
		{Origin: writeTempFile(t, dir, "bin/foo", "binary"), Target: "/usr/bin/", Mode: 0755},
		{Origin: writeTempFile(t, dir, "foo.conf", "key=value\n"), Target: "etc/foo/foo.conf", Mode: 0644},
	}

	build := func() []byte {
		var buf bytes.Buffer
		b := NewBuilder(&buf, 1700000000)
		require.NoError(t, GenerateArchive(b, cfg, filepath.Join(dir, "copyright")))
		require.NoError(t, b.Close())
		return buf.Bytes()
	}

	first := build()
	assert.Equal(t, first, build(), "same configuration and time must give identical bytes")

	entries := readArchive(t, first)
	assert.Equal(t, []string{
		"./",
		"./usr/",
		"./usr/bin/",
		"./usr/bin/foo",
		"./etc/",
		"./etc/foo/",
		"./etc/foo/foo.conf",
		".",
		"./usr/",
		"./usr/share/",
		"./usr/share/doc/",
		"./usr/share/doc/foo/",
		"./usr/share/doc/foo/copyright",
	}, entryNames(entries))
	assert.Equal(t, header+"MIT License\n", entries[len(entries)-1].Content)
}

func TestGenerateArchive_TimeChangesBytes(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(writeTempFile(t, dir, "LICENSE", "MIT"))

	build := func(mtime uint64) []byte {
		var buf bytes.Buffer
		b := NewBuilder(&buf, mtime)
		require.NoError(t, GenerateArchive(b, cfg, filepath.Join(dir, "copyright")))
		require.NoError(t, b.Close())
		return buf.Bytes()
	}
	assert.NotEqual(t, build(1), build(2))
}

func TestGenerateArchive_StopsOnAssetError(t *testing.T) {
	dir := t.TempDir()
	diskPath := filepath.Join(dir, "copyright")
	cfg := testConfig(writeTempFile(t, dir, "LICENSE", "MIT"))
	cfg.Assets = []Asset{{Origin: filepath.Join(dir, "missing"), Target: "usr/bin/", Mode: 0755}}

	b := NewBuilder(&bytes.Buffer{}, 0)
	require.ErrorIs(t, GenerateArchive(b, cfg, diskPath), ErrIO)
	assert.NoFileExists(t, diskPath)
}
