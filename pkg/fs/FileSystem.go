// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"os"
)

type FileSystem interface {
	Base(name string) string
	Canonical(ctx context.Context, name string) (string, error)
	Dir(name string) string
	IsNotExist(err error) bool
	Join(name ...string) string
	MkdirAll(ctx context.Context, name string, mode os.FileMode) (err error)
	Open(ctx context.Context, name string) (File, error)
	OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (File, error)
	ReadDir(ctx context.Context, name string) ([]DirectoryEntry, error)
	Relative(base string, target string) (string, error)
	Remove(ctx context.Context, name string) error
	Stat(ctx context.Context, name string) (FileInfo, error)
}
