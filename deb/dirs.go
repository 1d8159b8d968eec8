package deb

import "strings"

// DirectorySet records the directory entries already emitted during an asset
// pass, in the order they were first discovered. The zero value is ready to use.
type DirectorySet struct {
	seen  map[string]struct{}
	order []string
}

// Synthesize returns the ancestors of target that have not been emitted yet,
// root first, and marks them as emitted. Each ancestor keeps its trailing
// separator, so "./a/b/c.txt" yields "./", "./a/" and "./a/b/" the first time.
func (s *DirectorySet) Synthesize(target string) []string {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}

	var fresh []string
	for i := 0; i < len(target); i++ {
		if target[i] != '/' {
			continue
		}
		dir := target[:i+1]
		if _, ok := s.seen[dir]; ok {
			continue
		}
		s.seen[dir] = struct{}{}
		s.order = append(s.order, dir)
		fresh = append(fresh, dir)
	}
	return fresh
}

// Contains reports whether dir has already been emitted.
func (s *DirectorySet) Contains(dir string) bool {
	_, ok := s.seen[dir]
	return ok
}

// List returns the emitted directories in first-discovery order.
func (s *DirectorySet) List() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of emitted directories.
func (s *DirectorySet) Len() int { return len(s.order) }

// String joins the emitted directories, one per line.
func (s *DirectorySet) String() string { return strings.Join(s.order, "\n") }
