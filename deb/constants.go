package deb

// Permission bits stamped on synthesized entries.
const (
	// ModeFile is used for regular documentation files such as the copyright document.
	ModeFile uint32 = 0644
	// ModeDir is used for every directory entry.
	ModeDir uint32 = 0755
)

// DefaultCopyrightPath is where the standalone copy of the copyright document
// is persisted so checksum tooling can pick it up after the build.
const DefaultCopyrightPath = "target/debian/copyright"

// CopyrightField represents a header field of the generated copyright document.
type CopyrightField string

const (
	CopyrightUpstreamName CopyrightField = "Upstream Name"
	CopyrightSource       CopyrightField = "Source"
	CopyrightCopyright    CopyrightField = "Copyright"
	CopyrightLicense      CopyrightField = "License"
)

// docDir is the documentation directory chain every package ships, ending
// with the package's own directory.
func docDir(name string) []string {
	return []string{".", "./usr/", "./usr/share/", "./usr/share/doc/", "./usr/share/doc/" + name + "/"}
}
