package command

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// progress shows a spinner on stderr while resources are searched.
// It does nothing when the output is not a terminal.
type progress struct {
	spinner *spinner.Spinner
	start   time.Time
}

// startProgress creates and starts a spinner with a message
func (a *App) startProgress(message string) *progress {
	p := &progress{start: time.Now()}
	if !a.Interactive {
		return p
	}

	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(a.Stderr))
	s.Suffix = " " + message
	s.Start()
	p.spinner = s
	return p
}

// Update replaces the spinner message
func (p *progress) Update(format string, args ...any) {
	if p.spinner == nil {
		return
	}
	p.spinner.Lock()
	p.spinner.Suffix = " " + fmt.Sprintf(format, args...)
	p.spinner.Unlock()
}

// Done stops the spinner leaving a completion message
func (p *progress) Done(format string, args ...any) {
	if p.spinner == nil {
		return
	}
	p.spinner.FinalMSG = fmt.Sprintf(format, args...)
	p.spinner.Stop()
}

// Stop stops the spinner without a message; it is safe after Done
func (p *progress) Stop() {
	if p.spinner == nil {
		return
	}
	p.spinner.Stop()
}

// Elapsed returns the time since the spinner was started
func (p *progress) Elapsed() time.Duration {
	return time.Since(p.start)
}
