// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
)

// Walk traverses the tree rooted at input.Root depth-first, calling
// input.OnFile for every file and input.OnDirectory, when not nil, for every
// directory before descending into it.  Any path whose canonical form equals
// the canonical form of input.Exclude is skipped entirely, so a destination
// nested inside the root is never visited.  If the root does not exist or is
// not a directory the walk is a no-op.
func Walk(ctx context.Context, input *WalkInput) error {
	rootFileInfo, err := input.FileSystem.Stat(ctx, input.Root)
	if err != nil {
		if input.FileSystem.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error stating root %q: %w", input.Root, err)
	}
	if !rootFileInfo.IsDir() {
		return nil
	}

	// The exclude path must exist before the walk starts, since resolving a
	// missing path is an error.
	exclude, err := input.FileSystem.Canonical(ctx, input.Exclude)
	if err != nil {
		return fmt.Errorf("error resolving exclude path %q: %w", input.Exclude, err)
	}

	return walk(ctx, input, input.Root, exclude)
}

func walk(ctx context.Context, input *WalkInput, dir string, exclude string) error {
	directoryEntries, err := input.FileSystem.ReadDir(ctx, dir)
	if err != nil {
		return fmt.Errorf("error reading directory %q: %w", dir, err)
	}

	for _, directoryEntry := range directoryEntries {
		name := input.FileSystem.Join(dir, directoryEntry.Name())

		canonical, err := input.FileSystem.Canonical(ctx, name)
		if err != nil {
			return fmt.Errorf("error resolving path %q: %w", name, err)
		}
		if canonical == exclude {
			continue
		}

		if directoryEntry.IsDir() {
			if input.OnDirectory != nil {
				if err := input.OnDirectory(ctx, name); err != nil {
					return err
				}
			}
			if err := walk(ctx, input, name, exclude); err != nil {
				return err
			}
			continue
		}

		if err := input.OnFile(ctx, name, directoryEntry); err != nil {
			return err
		}
	}

	return nil
}
