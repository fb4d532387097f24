// Package ioutils provides file system utilities for the saf tools.
//
// This package contains functions for:
//   - File copying and writing
//   - Directory creation, including create-new semantics for item folders
//   - Filename sanitization
//   - Non-colliding output path generation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils
