// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/antig/antig/pkg/fs"
)

type LocalFileSystem struct {
	fs   afero.Fs
	iofs afero.IOFS
	// resolveSymlinks is false for in-memory filesystems, where canonical
	// paths are computed lexically
	resolveSymlinks bool
}

func (lfs *LocalFileSystem) Base(name string) string {
	return filepath.Base(name)
}

// Canonical returns the absolute, symlink-resolved form of the path, used
// for identity comparisons.  The path must exist.
func (lfs *LocalFileSystem) Canonical(ctx context.Context, name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	if !lfs.resolveSymlinks {
		if _, err := lfs.fs.Stat(abs); err != nil {
			return "", err
		}
		return filepath.Clean(abs), nil
	}
	return filepath.EvalSymlinks(abs)
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return Dir(name)
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewLocalFile(f), nil
}

func (lfs *LocalFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirectoryEntry, error) {
	directoryEntries := []fs.DirectoryEntry{}
	readDirOutput, err := lfs.iofs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	for _, directoryEntry := range readDirOutput {
		directoryEntries = append(directoryEntries, &LocalDirectoryEntry{
			de: directoryEntry,
		})
	}
	return directoryEntries, nil
}

func (lfs *LocalFileSystem) Relative(base string, target string) (string, error) {
	return filepath.Rel(base, target)
}

func (lfs *LocalFileSystem) Remove(ctx context.Context, name string) error {
	return lfs.fs.Remove(name)
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi.Name(), fi.ModTime(), fi.IsDir(), fi.Size()), nil
}

func NewLocalFileSystem() *LocalFileSystem {
	lfs := afero.NewOsFs()
	return &LocalFileSystem{
		fs:              lfs,
		iofs:            afero.NewIOFS(lfs),
		resolveSymlinks: true,
	}
}

// NewMemoryFileSystem returns a filesystem backed by memory, used in tests.
func NewMemoryFileSystem() *LocalFileSystem {
	lfs := afero.NewMemMapFs()
	return &LocalFileSystem{
		fs:              lfs,
		iofs:            afero.NewIOFS(lfs),
		resolveSymlinks: false,
	}
}
