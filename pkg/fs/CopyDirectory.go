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

// CopyDirectory mirrors the tree rooted at input.Source under
// input.Destination, keeping the source's base name as the top of the mirror,
// so copying /a/b into /dst produces /dst/b.  The destination subtree is
// excluded from the walk.  Files whose destination already exists with the
// same size are skipped; a destination with a different size is removed and
// copied again.
//
// The caller must have verified that the source and the destination are both
// directories.
func CopyDirectory(ctx context.Context, input *CopyDirectoryInput) error {
	fileSystem := input.FileSystem

	root := fileSystem.Join(input.Destination, fileSystem.Base(input.Source))
	if err := fileSystem.MkdirAll(ctx, root, 0755); err != nil {
		return fmt.Errorf("error creating directory %q: %w", root, err)
	}

	if input.Logger != nil {
		_ = input.Logger.Log("Copying directory", map[string]interface{}{
			"src": input.Source,
			"dst": root,
		})
	}

	// mirrored paths are re-rooted relative to the source's parent, which
	// keeps the source's base name in the destination tree
	base := fileSystem.Dir(input.Source)
	mirror := func(name string) (string, error) {
		relative, err := fileSystem.Relative(base, name)
		if err != nil {
			return "", fmt.Errorf("error mirroring %q under %q: %w", name, input.Destination, err)
		}
		return fileSystem.Join(input.Destination, relative), nil
	}

	return Walk(ctx, &WalkInput{
		FileSystem: fileSystem,
		Root:       input.Source,
		Exclude:    input.Destination,
		OnDirectory: func(ctx context.Context, name string) error {
			destination, err := mirror(name)
			if err != nil {
				return err
			}
			if err := fileSystem.MkdirAll(ctx, destination, 0755); err != nil {
				return fmt.Errorf("error creating directory %q: %w", destination, err)
			}
			return nil
		},
		OnFile: func(ctx context.Context, name string, entry DirectoryEntry) error {
			destination, err := mirror(name)
			if err != nil {
				return err
			}

			if input.Logger != nil {
				metadata, metadataError := entry.MarshalJSON()
				if metadataError != nil {
					return fmt.Errorf("error serializing metadata for %q: %w", name, metadataError)
				}
				_ = input.Logger.Log("Visiting file", map[string]interface{}{
					"entry":   string(metadata),
					"modTime": entry.ModTime(),
				})
			}

			if input.Noise && input.Progress != nil {
				input.Progress.Println(fmt.Sprintf("cp: %s => %s", name, destination))
			}

			if input.ShowProgress && input.Progress != nil {
				input.Progress.SetTotal(input.Counter.Load())
			}

			copyFile := true
			destinationFileInfo, err := fileSystem.Stat(ctx, destination)
			if err != nil {
				if !fileSystem.IsNotExist(err) {
					return fmt.Errorf("error stating destination %q: %w", destination, err)
				}
			} else {
				if entry.Size() == destinationFileInfo.Size() {
					// same size, treat as already copied
					copyFile = false
					if input.Logger != nil {
						metadata, metadataError := destinationFileInfo.MarshalJSON()
						if metadataError != nil {
							return fmt.Errorf("error serializing metadata for %q: %w", destination, metadataError)
						}
						_ = input.Logger.Log("Skipping file with identical size", map[string]interface{}{
							"dst": string(metadata),
						})
					}
				} else {
					// stale partial copy, replace it
					if err := fileSystem.Remove(ctx, destination); err != nil {
						return fmt.Errorf("error removing stale destination %q: %w", destination, err)
					}
				}
			}

			if copyFile {
				err := Copy(ctx, &CopyInput{
					SourceName:      name,
					DestinationName: destination,
					FileSystem:      fileSystem,
					Logger:          input.Logger,
				})
				if err != nil {
					return fmt.Errorf("error copying %q to %q: %w", name, destination, err)
				}
			}

			if input.ShowProgress && input.Progress != nil {
				input.Progress.Increment()
			}

			return nil
		},
	})
}
