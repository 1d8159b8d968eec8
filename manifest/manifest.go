// Package manifest loads the declarative description of a package's data
// archive and turns it into a validated deb.Config.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/debdata/deb"
	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk description of a data archive.
type Manifest struct {
	// Defines is a map of variables available to templates in every string field.
	Defines map[string]string `json:"defines" yaml:"defines"`
	// Name is the package name.
	Name string `json:"name" yaml:"name"`
	// Repository is the upstream source URL.
	Repository string `json:"repository" yaml:"repository"`
	// Copyright is the copyright statement.
	Copyright string `json:"copyright" yaml:"copyright"`
	// License is the license identifier.
	License string `json:"license" yaml:"license"`
	// LicenseFile is [path] or [path, skip-lines], path being relative to the manifest.
	LicenseFile []string `json:"license_file" yaml:"license_file"`
	// Time is the modification time stamped on every entry, in seconds since the epoch.
	Time *uint64 `json:"time" yaml:"time"`
	// Assets are [origin, target, mode] records, origin being relative to the manifest.
	Assets [][]string `json:"assets" yaml:"assets"`

	filePath string
	engine   *templateEngine
}

// Load reads and parses a Manifest from the specified file path.
// It supports both JSON and YAML formats based on the file extension.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := unmarshal(path, content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	m.filePath = path
	m.engine = newTemplateEngine(m.Defines)
	return &m, nil
}

// Config renders the manifest templates, resolves relative paths and parses
// every asset record. Malformed assets are rejected here, before any archive
// is written.
func (m *Manifest) Config() (*deb.Config, error) {
	if m.engine == nil {
		m.engine = newTemplateEngine(m.Defines)
	}

	cfg := &deb.Config{}
	fields := []struct {
		name string
		src  string
		dst  *string
	}{
		{"name", m.Name, &cfg.Name},
		{"repository", m.Repository, &cfg.Repository},
		{"copyright", m.Copyright, &cfg.Copyright},
		{"license", m.License, &cfg.License},
	}
	for _, f := range fields {
		v, err := m.engine.render(f.name, f.src)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.name, err)
		}
		*f.dst = v
	}

	licenseFile, err := m.engine.renderAll("license_file", m.LicenseFile)
	if err != nil {
		return nil, fmt.Errorf("rendering license_file: %w", err)
	}
	if len(licenseFile) > 0 && licenseFile[0] != "" {
		licenseFile[0] = m.resolve(licenseFile[0])
	}
	cfg.LicenseFile = licenseFile

	for i, record := range m.Assets {
		name := fmt.Sprintf("assets[%d]", i)
		rendered, err := m.engine.renderAll(name, record)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		asset, err := deb.ParseAsset(rendered)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		asset.Origin = m.resolve(asset.Origin)
		cfg.Assets = append(cfg.Assets, asset)
	}
	return cfg, nil
}

// ModTime returns the timestamp to stamp on every entry: the manifest's time
// if set, otherwise SOURCE_DATE_EPOCH, otherwise fallback.
//
// Reference: https://reproducible-builds.org/specs/source-date-epoch/
func (m *Manifest) ModTime(fallback uint64) (uint64, error) {
	if m.Time != nil {
		return *m.Time, nil
	}
	if epoch := os.Getenv("SOURCE_DATE_EPOCH"); epoch != "" {
		t, err := strconv.ParseUint(strings.TrimSpace(epoch), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing SOURCE_DATE_EPOCH: %w", err)
		}
		return t, nil
	}
	return fallback, nil
}

// Build writes the complete data archive to w and the standalone copyright
// copy to copyrightPath. It returns the number of archive bytes written.
func (m *Manifest) Build(w io.Writer, copyrightPath string, mtime uint64, l deb.Listener) (int64, error) {
	cfg, err := m.Config()
	if err != nil {
		return 0, err
	}
	if l == nil {
		l = func(fmt.Stringer) {}
	}

	b := deb.NewBuilder(w, mtime)
	b.SetListener(l)
	if err := deb.GenerateArchive(b, cfg, copyrightPath); err != nil {
		return b.Len(), fmt.Errorf("building data archive for %s: %w", cfg.Name, err)
	}
	if err := b.Close(); err != nil {
		return b.Len(), fmt.Errorf("closing data archive for %s: %w", cfg.Name, err)
	}
	l(EventBuildSuccess{Manifest: m.filePath, Package: cfg.Name, Assets: len(cfg.Assets), Size: b.Len()})
	return b.Len(), nil
}

func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.filePath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(m.filePath), path)
}

// unmarshal parses JSON or YAML based on file extension.
func unmarshal(path string, data []byte, v interface{}) error {
	ext := strings.ToLower(filepath.Ext(path))
	r := bytes.NewReader(data)
	if ext == ".yaml" || ext == ".yml" {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		return dec.Decode(v)
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
