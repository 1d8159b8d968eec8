package deb

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"math"
	"time"
)

// EntryKind distinguishes regular files from directories in the archive.
type EntryKind string

const (
	EntryFile EntryKind = "file"
	EntryDir  EntryKind = "dir"
)

// Entry is a single item appended to the archive.
type Entry struct {
	// Path is the archive path, e.g. "./usr/bin/app" or "./usr/" for a directory.
	Path string
	Kind EntryKind
	Mode uint32
	// Size must equal len(Content) for files and is ignored for directories.
	Size    uint64
	Content []byte
}

// Builder appends entries to a tar stream. Every entry carries the same
// modification time so that identical inputs produce identical bytes.
//
// Builder is append-only: entries are never rewritten. After the first error
// the Builder refuses further work and keeps returning that error, because a
// partially written archive is not a valid payload.
type Builder struct {
	tw       *tar.Writer
	cw       *countingWriter
	mtime    time.Time
	entries  int
	err      error
	listener Listener
}

// NewBuilder returns a Builder writing a GNU tar stream to w, stamping every
// entry with mtime (seconds since the Unix epoch).
func NewBuilder(w io.Writer, mtime uint64) *Builder {
	cw := &countingWriter{w: w}
	return &Builder{
		tw:       tar.NewWriter(cw),
		cw:       cw,
		mtime:    time.Unix(int64(mtime), 0).UTC(),
		listener: func(fmt.Stringer) {},
	}
}

// SetListener registers l to receive an event for every entry written.
func (b *Builder) SetListener(l Listener) {
	if l == nil {
		l = func(fmt.Stringer) {}
	}
	b.listener = l
}

// Len returns the number of bytes written to the underlying writer so far.
func (b *Builder) Len() int64 { return b.cw.n }

// Entries returns the number of entries appended so far.
func (b *Builder) Entries() int { return b.entries }

// Err returns the error that stopped the Builder, if any.
func (b *Builder) Err() error { return b.err }

// WriteDir appends a directory entry at ModeDir.
func (b *Builder) WriteDir(path string) error {
	return b.WriteEntry(Entry{Path: path, Kind: EntryDir, Mode: ModeDir})
}

// WriteFile appends a regular file entry holding content.
func (b *Builder) WriteFile(path string, mode uint32, content []byte) error {
	return b.WriteEntry(Entry{
		Path:    path,
		Kind:    EntryFile,
		Mode:    mode,
		Size:    uint64(len(content)),
		Content: content,
	})
}

// WriteEntry appends e to the archive. The tar writer computes the header
// checksum.
func (b *Builder) WriteEntry(e Entry) error {
	if b.err != nil {
		return b.err
	}

	header := &tar.Header{
		Name:     e.Path,
		Mode:     int64(e.Mode),
		ModTime:  b.mtime,
		Typeflag: tar.TypeReg,
		Format:   tar.FormatGNU,
	}
	switch e.Kind {
	case EntryDir:
		header.Typeflag = tar.TypeDir
		e.Content = nil
		e.Size = 0
	case EntryFile:
		if e.Size > math.MaxInt64 || e.Size != uint64(len(e.Content)) {
			return b.fail(encodingError("write header", e.Path,
				fmt.Errorf("size %d does not match content length %d", e.Size, len(e.Content))))
		}
		header.Size = int64(e.Size)
	default:
		return b.fail(encodingError("write header", e.Path, fmt.Errorf("unknown entry kind %q", e.Kind)))
	}
	if e.Path == "" {
		return b.fail(encodingError("write header", e.Path, errors.New("empty path")))
	}

	if err := b.tw.WriteHeader(header); err != nil {
		if b.cw.err != nil {
			return b.fail(ioError("write header", e.Path, err))
		}
		return b.fail(encodingError("write header", e.Path, err))
	}
	if len(e.Content) > 0 {
		if _, err := b.tw.Write(e.Content); err != nil {
			return b.fail(ioError("write content", e.Path, err))
		}
	}

	b.entries++
	b.listener(EventEntryWritten{Path: e.Path, Kind: e.Kind, Mode: e.Mode, Size: e.Size})
	return nil
}

// Close writes the tar trailer. It does not close the underlying writer.
func (b *Builder) Close() error {
	if b.err != nil {
		return b.err
	}
	if err := b.tw.Close(); err != nil {
		return b.fail(ioError("close archive", "", err))
	}
	b.listener(EventArchiveComplete{Entries: b.entries, Size: b.cw.n})
	return nil
}

func (b *Builder) fail(err error) error {
	b.err = err
	return err
}
