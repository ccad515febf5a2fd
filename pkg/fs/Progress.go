// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

// Progress receives updates from a copy operation.  SetTotal declares the
// expected number of files, which may grow while counting is still underway.
type Progress interface {
	SetTotal(total int64)
	Increment()
	Println(a ...interface{})
}
