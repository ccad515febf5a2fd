// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"fmt"
	"io"
)

// Quiet discards progress updates but still prints per-file lines, used when
// the progress bar is disabled.
type Quiet struct {
	w io.Writer
}

func (q *Quiet) SetTotal(total int64) {
}

func (q *Quiet) Increment() {
}

func (q *Quiet) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(q.w, a...)
}

func NewQuiet(w io.Writer) *Quiet {
	return &Quiet{
		w: w,
	}
}
