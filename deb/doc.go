// Package deb assembles the data archive of a Debian binary package.
//
// # Design Philosophy
//
// The archive is built in a single, sequential pass into any io.Writer.
// Every entry carries the same modification time, entries are written in a
// deterministic order, and no host metadata (owners, access times) leaks into
// the headers, so the same configuration always produces the same bytes.
//
// # Features
//
// Assets:
//   - Declared as [origin, target, octal-mode] records and validated up front.
//   - Targets are normalized to "./"-relative archive paths.
//   - Missing parent directories are synthesized once per build, root first.
//
// Copyright:
//   - The copyright document is derived from the project's license file.
//   - A copy is persisted on disk for checksum tooling.
//   - The /usr/share/doc/<name> directory chain is always emitted.
//
// Errors:
//   - Every failure is terminal and is reported as an *Error whose kind is
//     ErrConfiguration, ErrIO or ErrEncoding.
package deb
