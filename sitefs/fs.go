// Copyright 2019 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sitefs provides the file systems used by the build.
package sitefs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Os points to the (real) Os filesystem.
var Os = &afero.OsFs{}

// Fs holds the core filesystems used by the build.
type Fs struct {
	// Source is the file system everything is read from.
	// Note that this will always be a "plain" Afero filesystem:
	// * afero.OsFs when running in production
	// * afero.MemMapFs for the tests.
	Source afero.Fs

	// PublishDir is where the rendered site goes, rooted at the
	// publish dir (default dist).
	PublishDir afero.Fs

	// WorkingDirReadOnly is a read-only file system
	// restricted to the project working dir.
	WorkingDirReadOnly afero.Fs

	workingDir    string
	absPublishDir string
}

// NewDefault creates a new Fs with the OS file system
// as source and destination file systems.
func NewDefault(workingDir, publishDir string) *Fs {
	return NewFrom(Os, workingDir, publishDir)
}

// NewFrom creates a new Fs based on the provided Afero Fs
// as source and destination file systems.
// Useful for testing.
func NewFrom(fs afero.Fs, workingDir, publishDir string) *Fs {
	absPublishDir := AbsPathify(workingDir, publishDir)

	return &Fs{
		Source:             fs,
		PublishDir:         afero.NewBasePathFs(fs, absPublishDir),
		WorkingDirReadOnly: getWorkingDirFsReadOnly(fs, workingDir),
		workingDir:         workingDir,
		absPublishDir:      absPublishDir,
	}
}

// AbsPublishDir is the publish dir on the source file system.
func (fs *Fs) AbsPublishDir() string {
	return fs.absPublishDir
}

// WorkingDir is the project root.
func (fs *Fs) WorkingDir() string {
	return fs.workingDir
}

// RelWorkingDir returns p relative to the working dir, as needed to read
// it through WorkingDirReadOnly. An absolute p outside of the working dir
// is an error.
func (fs *Fs) RelWorkingDir(p string) (string, error) {
	if !filepath.IsAbs(p) || fs.workingDir == "" {
		return filepath.Clean(p), nil
	}
	if !contains(fs.workingDir, p) {
		return "", fmt.Errorf("%q is outside the working dir %q", p, fs.workingDir)
	}
	return filepath.Rel(fs.workingDir, p)
}

// ResetPublishDir removes the publish dir with everything in it and
// creates it again, empty. It refuses to remove the working dir itself or
// anything above it.
func (fs *Fs) ResetPublishDir() error {
	pub := filepath.Clean(fs.absPublishDir)
	if contains(pub, filepath.Clean(fs.workingDir)) {
		return fmt.Errorf("refusing to clear publish dir %q: it contains the working dir", pub)
	}
	if err := fs.Source.RemoveAll(pub); err != nil {
		return fmt.Errorf("failed to clear publish dir %q: %w", pub, err)
	}
	if err := fs.Source.MkdirAll(pub, 0o777); err != nil {
		return fmt.Errorf("failed to create publish dir %q: %w", pub, err)
	}
	return nil
}

// contains reports whether dir is parent or equal to p.
func contains(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func getWorkingDirFsReadOnly(base afero.Fs, workingDir string) afero.Fs {
	if workingDir == "" {
		return afero.NewReadOnlyFs(base)
	}
	return afero.NewBasePathFs(afero.NewReadOnlyFs(base), workingDir)
}

// AbsPathify creates an absolute path if given a working dir and a relative path.
// If already absolute, the path is just cleaned.
func AbsPathify(workingDir, inPath string) string {
	if filepath.IsAbs(inPath) {
		return filepath.Clean(inPath)
	}
	return filepath.Join(workingDir, inPath)
}
