// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
)

type WalkInput struct {
	Exclude     string
	FileSystem  FileSystem
	OnDirectory func(ctx context.Context, name string) error
	OnFile      func(ctx context.Context, name string, entry DirectoryEntry) error
	Root        string
}
