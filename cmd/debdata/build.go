package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/etnz/debdata/deb"
	"github.com/etnz/debdata/manifest"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

// BuildCommand implements the "build" subcommand.
type BuildCommand struct {
	Config    flags.Filename `short:"c" long:"config" default:"debdata.yaml" description:"path to the manifest (YAML or JSON)"`
	Out       flags.Filename `short:"o" long:"out" default:"target/debian/data.tar" description:"path of the tar archive to write"`
	Copyright flags.Filename `long:"copyright" default:"target/debian/copyright" description:"path of the standalone copyright copy"`
	Time      *uint64        `long:"time" description:"modification time of every entry, in seconds since the epoch (default: manifest time, SOURCE_DATE_EPOCH, then now)"`
}

// Execute builds the archive in memory and writes it out only once it is complete.
func (c *BuildCommand) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	m, err := manifest.Load(string(c.Config))
	if err != nil {
		return err
	}

	var mtime uint64
	if c.Time != nil {
		mtime = *c.Time
	} else if mtime, err = m.ModTime(uint64(time.Now().Unix())); err != nil {
		return err
	}

	for _, path := range []string{string(c.Out), string(c.Copyright)} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output directory for %s: %w", path, err)
		}
	}

	var buf bytes.Buffer
	size, err := m.Build(&buf, string(c.Copyright), mtime, listener(logger))
	if err != nil {
		logger.Error("build failed", zap.Error(err))
		return err
	}
	if err := os.WriteFile(string(c.Out), buf.Bytes(), os.FileMode(deb.ModeFile)); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}

	logger.Info("data archive written",
		zap.String("path", string(c.Out)),
		zap.String("size", humanize.IBytes(uint64(size))),
		zap.Uint64("mtime", mtime))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// listener logs archive entries at debug level and every other event at info level.
func listener(logger *zap.Logger) deb.Listener {
	return func(e fmt.Stringer) {
		switch ev := e.(type) {
		case deb.EventEntryWritten:
			logger.Debug("entry written",
				zap.String("path", ev.Path),
				zap.String("kind", string(ev.Kind)),
				zap.String("mode", fmt.Sprintf("%04o", ev.Mode)),
				zap.String("size", humanize.IBytes(ev.Size)))
		case deb.EventCopyrightPersisted:
			logger.Info("copyright persisted", zap.String("path", ev.Path), zap.Int("size", ev.Size))
		default:
			logger.Info("event", zap.Stringer("event", e))
		}
	}
}
