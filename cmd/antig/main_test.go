// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antig/antig/pkg/fs"
	"github.com/antig/antig/pkg/lfs"
	"github.com/antig/antig/pkg/progress"
)

func writeFile(t *testing.T, fileSystem fs.FileSystem, name string, contents string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, fileSystem.MkdirAll(ctx, fileSystem.Dir(name), 0755))
	f, err := fileSystem.OpenFile(ctx, name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	require.NoError(t, err)
	_, err = f.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func readFile(t *testing.T, fileSystem fs.FileSystem, name string) string {
	t.Helper()
	ctx := context.Background()
	f, err := fileSystem.Open(ctx, name)
	require.NoError(t, err)
	contents, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return string(contents)
}

func TestCopySourceDirectoryRequiresRecursive(t *testing.T) {
	ctx := context.Background()
	fileSystem := lfs.NewMemoryFileSystem()

	writeFile(t, fileSystem, "/src/a.txt", "abc")
	require.NoError(t, fileSystem.MkdirAll(ctx, "/dst", 0755))

	err := copySource(ctx, &copySourceInput{
		Source:      "/src",
		Destination: "/dst",
		Recursive:   false,
		FileSystem:  fileSystem,
		Counter:     &atomic.Int64{},
	})
	require.EqualError(t, err, "cannot copy a directory without recursive process")

	// nothing was mirrored before the validation failed
	_, err = fileSystem.Stat(ctx, "/dst/src")
	require.Error(t, err)
	assert.True(t, fileSystem.IsNotExist(err))
}

func TestCopySourceDirectory(t *testing.T) {
	ctx := context.Background()
	fileSystem := lfs.NewMemoryFileSystem()

	writeFile(t, fileSystem, "/src/a.txt", "abc")
	require.NoError(t, fileSystem.MkdirAll(ctx, "/dst", 0755))

	buf := bytes.Buffer{}
	err := copySource(ctx, &copySourceInput{
		Source:      "/src",
		Destination: "/dst",
		Recursive:   true,
		Noise:       true,
		FileSystem:  fileSystem,
		Counter:     &atomic.Int64{},
		Progress:    progress.NewQuiet(&buf),
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", readFile(t, fileSystem, "/dst/src/a.txt"))
	assert.Equal(t, "cp: /src/a.txt => /dst/src/a.txt\n", buf.String())
}

func TestCopySourceDestinationNotDirectory(t *testing.T) {
	ctx := context.Background()
	fileSystem := lfs.NewMemoryFileSystem()

	writeFile(t, fileSystem, "/src/a.txt", "abc")
	writeFile(t, fileSystem, "/dst.txt", "x")

	err := copySource(ctx, &copySourceInput{
		Source:      "/src",
		Destination: "/dst.txt",
		Recursive:   true,
		FileSystem:  fileSystem,
		Counter:     &atomic.Int64{},
	})
	require.EqualError(t, err, `"/dst.txt" is not a directory`)
}

func TestCopySourceSkipsSelfCopy(t *testing.T) {
	ctx := context.Background()
	fileSystem := lfs.NewMemoryFileSystem()

	require.NoError(t, fileSystem.MkdirAll(ctx, "/dst", 0755))

	err := copySource(ctx, &copySourceInput{
		Source:      "/dst",
		Destination: "/dst",
		Recursive:   true,
		FileSystem:  fileSystem,
		Counter:     &atomic.Int64{},
	})
	require.NoError(t, err)

	directoryEntries, err := fileSystem.ReadDir(ctx, "/dst")
	require.NoError(t, err)
	assert.Empty(t, directoryEntries)
}

func TestCopySourceFileIntoDirectory(t *testing.T) {
	ctx := context.Background()
	fileSystem := lfs.NewMemoryFileSystem()

	writeFile(t, fileSystem, "/a.txt", "abc")
	require.NoError(t, fileSystem.MkdirAll(ctx, "/dst", 0755))

	buf := bytes.Buffer{}
	err := copySource(ctx, &copySourceInput{
		Source:      "/a.txt",
		Destination: "/dst",
		Noise:       true,
		FileSystem:  fileSystem,
		Counter:     &atomic.Int64{},
		Progress:    progress.NewQuiet(&buf),
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", readFile(t, fileSystem, "/dst/a.txt"))
	assert.Equal(t, "cp: /a.txt => /dst/a.txt\n", buf.String())
}
