// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"github.com/pterm/pterm"
)

// Bar renders a terminal progress bar.  The total is expected to grow while
// a background count is still running, so SetTotal may be called repeatedly.
type Bar struct {
	bar *pterm.ProgressbarPrinter
}

func (b *Bar) SetTotal(total int64) {
	if total > 0 {
		b.bar.Total = int(total)
	}
}

func (b *Bar) Increment() {
	b.bar.Increment()
}

func (b *Bar) Println(a ...interface{}) {
	pterm.Println(a...)
}

func (b *Bar) Stop() error {
	_, err := b.bar.Stop()
	return err
}

func StartBar(title string) (*Bar, error) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(100).
		WithTitle(title).
		WithShowCount(true).
		WithShowPercentage(true).
		WithShowElapsedTime(true).
		Start()
	if err != nil {
		return nil, err
	}
	return &Bar{bar: bar}, nil
}
