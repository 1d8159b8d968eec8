package deb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectorySet_Synthesize(t *testing.T) {
	var s DirectorySet

	assert.Equal(t, []string{"./", "./a/", "./a/b/"}, s.Synthesize("./a/b/c.txt"))
	assert.Empty(t, s.Synthesize("./a/b/d.txt"))
	assert.Equal(t, []string{"./z/"}, s.Synthesize("./z/e.txt"))
	assert.Equal(t, []string{"./a/c/"}, s.Synthesize("./a/c/f.txt"))

	// First-discovery order, not lexical order.
	assert.Equal(t, []string{"./", "./a/", "./a/b/", "./z/", "./a/c/"}, s.List())
	assert.Equal(t, 5, s.Len())
	assert.True(t, s.Contains("./z/"))
	assert.False(t, s.Contains("./z"))
}

func TestDirectorySet_NoSeparator(t *testing.T) {
	var s DirectorySet
	assert.Empty(t, s.Synthesize("file"))
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains("./"))
}

func TestDirectorySet_ListIsACopy(t *testing.T) {
	var s DirectorySet
	s.Synthesize("./a/b")
	l := s.List()
	l[0] = "changed"
	assert.Equal(t, []string{"./", "./a/"}, s.List())
	assert.Equal(t, "./\n./a/", s.String())
}
