// Package typegen is the emitter framework: generated files, the generator
// contract, the parallel writer and the up-to-date check.
//
// # Architecture
//
// Generation is split in two layers:
//  1. The ir package resolves the corrected type graph into a read-only Model
//  2. Language generators (kotlin/) render the Model into Files
//
// Files are plain values. Post-processing (cleanup/) and writing happen after
// every file has been rendered, so a failing type never leaves partial output
// on disk.
//
// # Design Decisions
//
//   - Deterministic output (sorted types and members) enables CI validation
//     with the check command
//   - Generators never touch the filesystem; Writer owns all I/O
//   - Descriptions are an optional collaborator looked up by locator
package typegen

import "github.com/teranos/declgen/ir"

// File is one generated output unit. Path is relative to the output root and
// uses forward slashes.
type File struct {
	Path    string
	Content string
}

// Generator renders a Model into output files.
type Generator interface {
	// Language returns the target name (e.g. "kotlin")
	Language() string

	// FileExtension returns the extension of generated files without the dot
	FileExtension() string

	// Generate renders every type and function signature of the model
	Generate(m *ir.Model) ([]File, error)
}

// PackagePath converts a dotted namespace to a relative directory:
// "yfiles.graph" -> "yfiles/graph".
func PackagePath(namespace string) string {
	out := []byte(namespace)
	for i, c := range out {
		if c == '.' {
			out[i] = '/'
		}
	}
	return string(out)
}
