package deb

// Config is the resolved package configuration the data archive is built from.
type Config struct {
	// Assets are copied into the archive in this order.
	Assets []Asset
	// Name is the package name; it also names the documentation directory.
	Name string
	// Repository is the upstream source URL.
	Repository string
	// Copyright is the copyright statement, e.g. "2017, Jane Doe".
	Copyright string
	// License is the license identifier, e.g. "MIT".
	License string
	// LicenseFile is [path] or [path, skip-lines].
	LicenseFile []string
}

// GenerateArchive writes the assets and then the copyright document into b.
// It stops at the first error; the caller closes b only on success.
func GenerateArchive(b *Builder, cfg *Config, copyrightPath string) error {
	if err := CopyAssets(b, cfg.Assets); err != nil {
		return err
	}
	return WriteCopyright(b, cfg, copyrightPath)
}
