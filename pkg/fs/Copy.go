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
	"io"
	"os"
)

// Copy copies the bytes of a single file, truncating the destination if it
// already exists.
func Copy(ctx context.Context, input *CopyInput) error {
	if input.Logger != nil {
		_ = input.Logger.Log("Copying file", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	// open source file
	sourceFile, err := input.FileSystem.Open(ctx, input.SourceName)
	if err != nil {
		return fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
	}

	// open destination file
	destinationFile, err := input.FileSystem.OpenFile(ctx, input.DestinationName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		return fmt.Errorf("error creating destination file at %q: %w", input.DestinationName, err)
	}

	// copy bytes from source to destination
	written, err := io.Copy(destinationFile, sourceFile)
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error copying from %q to %q: %w", input.SourceName, input.DestinationName, err)
	}

	err = sourceFile.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return fmt.Errorf("error closing source file after copying: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return fmt.Errorf("error closing destination file after copying: %w", err)
	}

	if input.Logger != nil {
		_ = input.Logger.Log("Done copying file", map[string]interface{}{
			"src":     input.SourceName,
			"dst":     input.DestinationName,
			"written": written,
		})
	}

	return nil
}
