package deb

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var errMissingValue = errors.New("missing value")

// Asset is a file copied from the build host into the archive.
type Asset struct {
	// Origin is the path of the file on the build host.
	Origin string
	// Target is the declared install location. A trailing "/" means "into this
	// directory, under the origin's file name".
	Target string
	// Mode is the permission bits of the archived file.
	Mode uint32
}

// ParseAsset decodes an [origin, target, mode] record, mode being octal text
// such as "755". Extra elements are ignored.
func ParseAsset(record []string) (Asset, error) {
	fields := []string{"origin", "target", "mode"}
	for i, field := range fields {
		if len(record) <= i || record[i] == "" {
			return Asset{}, configError("parse asset", field, errMissingValue)
		}
	}

	mode, err := strconv.ParseUint(record[2], 8, 32)
	if err != nil {
		return Asset{}, configError("parse asset", "mode", err)
	}
	return Asset{Origin: record[0], Target: record[1], Mode: uint32(mode)}, nil
}

// NormalizeTarget turns a declared target into an archive path: a single
// leading "/" is dropped, the origin's file name is appended when the target
// names a directory, and the result is prefixed with "./".
func NormalizeTarget(origin, target string) (string, error) {
	if origin == "" {
		return "", configError("normalize target", "origin", errMissingValue)
	}
	if target == "" {
		return "", configError("normalize target", "target", errMissingValue)
	}

	name := strings.TrimPrefix(target, "/")
	if strings.HasSuffix(target, "/") {
		name += filepath.Base(origin)
	}
	return "./" + name, nil
}

// CopyAssets writes every asset into the archive in declared order, each one
// preceded by the ancestor directories no earlier asset has produced.
// All targets are normalized before the first byte is written.
func CopyAssets(b *Builder, assets []Asset) error {
	targets := make([]string, len(assets))
	for i, asset := range assets {
		target, err := NormalizeTarget(asset.Origin, asset.Target)
		if err != nil {
			return err
		}
		targets[i] = target
	}

	var dirs DirectorySet
	for i, asset := range assets {
		for _, dir := range dirs.Synthesize(targets[i]) {
			if err := b.WriteDir(dir); err != nil {
				return err
			}
		}

		content, err := os.ReadFile(asset.Origin)
		if err != nil {
			return ioError("read asset", asset.Origin, err)
		}
		if err := b.WriteFile(targets[i], asset.Mode, content); err != nil {
			return err
		}
	}
	return nil
}
