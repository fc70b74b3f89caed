// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns CLI input into a conversion job: it validates the
// input PDF path and computes the output Markdown path from the explicit
// --output value or the default output directory convention.
package resolve

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Job is a fully resolved conversion: an existing input PDF and the path the
// Markdown output will be written to. Immutable once returned by Resolve.
type Job struct {
	InputPath  string
	OutputPath string
}

// InputNotFoundError reports that the input path does not exist or is not a
// regular file.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *InputNotFoundError) Unwrap() error { return e.Err }

// DefaultDirError reports that no --output was given and the default output
// directory is missing or not a directory.
type DefaultDirError struct {
	Dir string
}

func (e *DefaultDirError) Error() string {
	return fmt.Sprintf("default output directory %s does not exist: create it or pass --output", e.Dir)
}

// Resolver computes conversion jobs. ExecDir anchors the default output
// directory; OutputDir, when non-empty, replaces <ExecDir>/output entirely.
// Status messages go to Out.
type Resolver struct {
	ExecDir   string
	OutputDir string
	Out       io.Writer
}

// New returns a Resolver anchored at the running binary's directory.
func New(out io.Writer) (*Resolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locating executable: %w", err)
	}
	return &Resolver{ExecDir: filepath.Dir(exe), Out: out}, nil
}

// Resolve validates inputPath and computes the output path. outputFlag is the
// raw --output value, empty when the flag was not given.
//
// Output resolution order:
//  1. outputFlag names an existing directory: <dir>/<base>.md.
//  2. outputFlag is any other non-empty value (existing file or new path):
//     used verbatim.
//  3. no outputFlag: <default dir>/<base>.md, where the default directory
//     must already exist.
//
// Only the flag value itself is checked for directory-ness; the parent of an
// explicit file path is not validated here and a missing parent surfaces at
// write time. Paths are not normalized beyond what the OS calls do.
func (r *Resolver) Resolve(inputPath, outputFlag string) (Job, error) {
	info, err := os.Stat(inputPath)
	if err != nil || info.IsDir() {
		return Job{}, &InputNotFoundError{Path: inputPath, Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputFlag != "" {
		fi, statErr := os.Stat(outputFlag)
		switch {
		case statErr == nil && fi.IsDir():
			out := filepath.Join(outputFlag, base+".md")
			fmt.Fprintf(r.Out, "output directory given, writing to %s\n", out)
			return Job{InputPath: inputPath, OutputPath: out}, nil
		case statErr == nil:
			fmt.Fprintf(r.Out, "overwriting existing file %s\n", outputFlag)
		default:
			fmt.Fprintf(r.Out, "writing new file %s\n", outputFlag)
		}
		return Job{InputPath: inputPath, OutputPath: outputFlag}, nil
	}

	dir := r.OutputDir
	if dir == "" {
		dir = filepath.Join(r.ExecDir, "output")
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return Job{}, &DefaultDirError{Dir: dir}
	}
	out := filepath.Join(dir, base+".md")
	fmt.Fprintf(r.Out, "no --output given, writing to %s\n", out)
	return Job{InputPath: inputPath, OutputPath: out}, nil
}
