package cli

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// spinner animates an indeterminate progress bar until stopped.
type spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// startSpinner starts a spinner on w. A quiet spinner renders nothing.
func startSpinner(w io.Writer, description string, quiet bool) *spinner {
	s := &spinner{done: make(chan struct{})}
	if quiet {
		return s
	}

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.bar.Add(1)
			}
		}
	}()
	return s
}

// Stop halts the animation and clears the spinner line.
func (s *spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	s.wg.Wait()
	s.bar.Finish()
}
