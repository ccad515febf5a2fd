// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

type CopyInput struct {
	DestinationName string
	FileSystem      FileSystem
	Logger          Logger
	SourceName      string
}
