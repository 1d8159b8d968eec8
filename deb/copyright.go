package deb

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// GenerateCopyright builds the copyright document: the header fields followed
// by the license text, where blank lines become "." paragraph separators and
// every other line is trimmed.
//
// cfg.LicenseFile is [path] or [path, skip], skip being the number of leading
// license lines to drop. A skip that is absent or not a number means 0.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-docs.html#copyright-information
func GenerateCopyright(cfg *Config) ([]byte, error) {
	if cfg.Name == "" {
		return nil, configError("generate copyright", "name", errMissingValue)
	}
	if strings.Contains(cfg.Name, "/") {
		return nil, configError("generate copyright", "name", fmt.Errorf("%q contains a path separator", cfg.Name))
	}
	if len(cfg.LicenseFile) == 0 || cfg.LicenseFile[0] == "" {
		return nil, configError("generate copyright", "license_file", errors.New("missing license file argument"))
	}

	var b bytes.Buffer
	writeField := func(key CopyrightField, value string) {
		fmt.Fprintf(&b, "%s: %s\n", key, value)
	}
	writeField(CopyrightUpstreamName, cfg.Name)
	writeField(CopyrightSource, cfg.Repository)
	writeField(CopyrightCopyright, cfg.Copyright)
	writeField(CopyrightLicense, cfg.License)

	path := cfg.LicenseFile[0]
	skip := 0
	if len(cfg.LicenseFile) > 1 {
		skip = parseSkipLines(cfg.LicenseFile[1])
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError("read license file", path, err)
	}
	if !utf8.Valid(content) {
		return nil, ioError("read license file", path, errors.New("not valid UTF-8 text"))
	}

	lines := splitLines(string(content))
	if skip > len(lines) {
		skip = len(lines)
	}
	for _, line := range lines[skip:] {
		line = strings.TrimSpace(line)
		if line == "" {
			b.WriteString(".\n")
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.Bytes(), nil
}

// WriteCopyright generates the copyright document, persists a copy at diskPath
// for checksum tooling, then appends the documentation directories and the
// document itself to the archive.
//
// The documentation directories are written even when the asset pass already
// produced some of them; tar extraction tolerates a repeated directory entry.
func WriteCopyright(b *Builder, cfg *Config, diskPath string) error {
	doc, err := GenerateCopyright(cfg)
	if err != nil {
		return err
	}

	if err := persistCopy(diskPath, doc); err != nil {
		return err
	}
	b.listener(EventCopyrightPersisted{Path: diskPath, Size: len(doc)})

	dirs := docDir(cfg.Name)
	for _, dir := range dirs {
		if err := b.WriteDir(dir); err != nil {
			return err
		}
	}
	return b.WriteFile(dirs[len(dirs)-1]+"copyright", ModeFile, doc)
}

// persistCopy writes doc to path, truncating any previous content.
func persistCopy(path string, doc []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(ModeFile))
	if err != nil {
		return ioError("write copyright copy", path, err)
	}
	if _, err := f.Write(doc); err != nil {
		f.Close()
		return ioError("write copyright copy", path, err)
	}
	if err := f.Close(); err != nil {
		return ioError("write copyright copy", path, err)
	}
	return nil
}
