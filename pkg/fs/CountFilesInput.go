// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"sync/atomic"
)

type CountFilesInput struct {
	Counter     *atomic.Int64
	Destination string
	FileSystem  FileSystem
	Logger      Logger
	Sources     []string
}
