package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Tracker displays a progress bar when stdout is a TTY, line-by-line otherwise
type Tracker struct {
	mu      sync.Mutex
	total   int
	done    int
	failed  int
	current string
	isTTY   bool
	quiet   bool
}

// NewTracker creates a progress tracker for the given number of collectors.
func NewTracker(total int, quiet bool) *Tracker {
	return &Tracker{
		total: total,
		isTTY: isTerminal(),
		quiet: quiet,
	}
}

func isTerminal() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// Start prints the collector currently running (non-TTY mode)
func (t *Tracker) Start(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.quiet {
		return
	}
	t.current = name
	if t.isTTY {
		t.render()
	} else {
		fmt.Printf("  [*] Collecting: %s\n", name)
	}
}

// Success marks a category's collection as complete
func (t *Tracker) Success(category string, factorCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	if t.quiet {
		return
	}
	if t.isTTY {
		t.render()
	} else {
		fmt.Printf("  [+] %s: %d factors\n", category, factorCount)
	}
}

// Fail marks a category's collection as failed
func (t *Tracker) Fail(category string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	t.failed++
	if t.quiet {
		return
	}
	if t.isTTY {
		t.render()
	} else {
		fmt.Printf("  [!] %s failed: %v\n", category, err)
	}
}

// Finish clears the progress line (TTY mode)
func (t *Tracker) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.quiet {
		return
	}
	if t.isTTY {
		// Clear the line
		fmt.Print("\r\033[K")
	}
}

func (t *Tracker) render() {
	barWidth := 20
	if t.total == 0 {
		return
	}
	filled := (t.done * barWidth) / t.total
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("=", filled)
	if filled < barWidth {
		bar += ">"
		bar += strings.Repeat(" ", barWidth-filled-1)
	}

	failStr := ""
	if t.failed > 0 {
		failStr = fmt.Sprintf(" | %d failed", t.failed)
	}

	line := fmt.Sprintf("\r  [%s] %d/%d | %s%s",
		bar, t.done, t.total, t.current, failStr)
	if len(line) > 100 {
		line = line[:100]
	}
	fmt.Print("\033[K" + line)
}
