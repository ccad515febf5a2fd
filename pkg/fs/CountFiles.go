// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CountFiles walks every directory source in the background and adds one to
// input.Counter for each file found, excluding the destination subtree.  It
// returns without waiting, so readers of the counter see a total that grows
// until the walks finish.  Counting is advisory: failures are logged and
// dropped, never propagated to the copy in progress.
func CountFiles(ctx context.Context, input *CountFilesInput) {
	var wg errgroup.Group

	for _, source := range input.Sources {
		source := source
		sourceFileInfo, err := input.FileSystem.Stat(ctx, source)
		if err != nil || !sourceFileInfo.IsDir() {
			continue
		}
		wg.Go(func() error {
			return Walk(ctx, &WalkInput{
				FileSystem: input.FileSystem,
				Root:       source,
				Exclude:    input.Destination,
				OnFile: func(ctx context.Context, name string, entry DirectoryEntry) error {
					input.Counter.Add(1)
					return nil
				},
			})
		})
	}

	go func() {
		if err := wg.Wait(); err != nil {
			if input.Logger != nil {
				_ = input.Logger.Log("Error counting files", map[string]interface{}{
					"err": err.Error(),
				})
			}
		}
	}()
}
