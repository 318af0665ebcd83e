package helpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// OpenFileForWriting opens or creates the given file. If the target directory
// does not exist, it gets created.
func OpenFileForWriting(fs afero.Fs, filename string) (afero.File, error) {
	filename = filepath.Clean(filename)
	// Create will truncate if file already exists.
	// os.Create will create any new files with mode 0666 (before umask).
	f, err := fs.Create(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err = fs.MkdirAll(filepath.Dir(filename), 0777); err != nil { //  before umask
			return nil, err
		}
		f, err = fs.Create(filename)
	}

	return f, err
}

// WriteToDisk writes content to disk, creating any missing directories.
func WriteToDisk(inpath string, r io.Reader, fs afero.Fs) (err error) {
	f, err := OpenFileForWriting(fs, inpath)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string, fs afero.Fs) (bool, error) {
	return afero.DirExists(fs, path)
}

// CopyDir copies the tree rooted at from on srcFs to to on dstFs, byte
// for byte. Directories are created as needed. It returns the number of
// files copied.
func CopyDir(srcFs afero.Fs, from string, dstFs afero.Fs, to string) (int, error) {
	var count int
	err := afero.Walk(srcFs, from, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)
		if info.IsDir() {
			return dstFs.MkdirAll(target, 0777)
		}
		if err := copyFile(srcFs, path, dstFs, target); err != nil {
			return fmt.Errorf("copy %q: %w", path, err)
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(srcFs afero.Fs, from string, dstFs afero.Fs, to string) error {
	sf, err := srcFs.Open(from)
	if err != nil {
		return err
	}
	defer sf.Close()

	return WriteToDisk(to, sf, dstFs)
}

// AddTrailingSlash adds a trailing Unix styled slash (/) if not already
// there.
func AddTrailingSlash(path string) string {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
