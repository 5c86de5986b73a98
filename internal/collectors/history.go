package collectors

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// GitHistory reads commit activity through the git CLI. Every method
// returns ErrNoHistory when the project is not a git repository, so
// collectors can fall back to their documented defaults.
type GitHistory struct {
	root string
}

// compile-time interface check
var _ History = (*GitHistory)(nil)

// NewGitHistory creates a History reader rooted at the project path.
func NewGitHistory(root string) *GitHistory {
	return &GitHistory{root: root}
}

func (h *GitHistory) available() bool {
	info, err := os.Stat(filepath.Join(h.root, ".git"))
	return err == nil && info.IsDir()
}

func (h *GitHistory) git(ctx context.Context, args ...string) (string, error) {
	if !h.available() {
		return "", ErrNoHistory
	}
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", h.root}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func since(days int) string {
	return fmt.Sprintf("%d.days.ago", days)
}

// CommitCount returns the number of commits in the trailing window.
func (h *GitHistory) CommitCount(ctx context.Context, sinceDays int) (int, error) {
	out, err := h.git(ctx, "rev-list", "--count", "--since", since(sinceDays), "HEAD")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(out)
}

// FixCommitCount counts commits whose message mentions a fix or bug.
func (h *GitHistory) FixCommitCount(ctx context.Context, sinceDays int) (int, error) {
	out, err := h.git(ctx, "rev-list", "--count", "--since", since(sinceDays),
		"-i", "--grep", "fix", "--grep", "bug", "HEAD")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(out)
}

// Contributors returns the distinct commit authors in the window.
func (h *GitHistory) Contributors(ctx context.Context, sinceDays int) ([]Contributor, error) {
	out, err := h.git(ctx, "log", "--since", since(sinceDays), "--format=%an\x1f%ae")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var contributors []Contributor
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "\x1f", 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		key := strings.ToLower(parts[1])
		if seen[key] {
			continue
		}
		seen[key] = true
		contributors = append(contributors, Contributor{Name: parts[0], Email: parts[1]})
	}
	return contributors, nil
}

// DaysSinceLastCommit returns how many days ago the newest commit landed.
func (h *GitHistory) DaysSinceLastCommit(ctx context.Context) (int, error) {
	out, err := h.git(ctx, "log", "-1", "--format=%ct")
	if err != nil {
		return 0, err
	}
	return daysSinceEpoch(out)
}

// AgeDays returns the age of the repository from its first root commit.
func (h *GitHistory) AgeDays(ctx context.Context) (int, error) {
	out, err := h.git(ctx, "log", "--max-parents=0", "--format=%ct")
	if err != nil {
		return 0, err
	}
	// Multiple root commits are possible; take the oldest.
	oldest := 0
	for _, line := range strings.Split(out, "\n") {
		days, err := daysSinceEpoch(line)
		if err != nil {
			continue
		}
		if days > oldest {
			oldest = days
		}
	}
	return oldest, nil
}

// TagCount returns the number of tags in the repository.
func (h *GitHistory) TagCount(ctx context.Context) (int, error) {
	out, err := h.git(ctx, "tag", "--list")
	if err != nil {
		return 0, err
	}
	if out == "" {
		return 0, nil
	}
	return len(strings.Split(out, "\n")), nil
}

func daysSinceEpoch(unixStr string) (int, error) {
	sec, err := strconv.ParseInt(strings.TrimSpace(unixStr), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing commit timestamp: %w", err)
	}
	age := time.Since(time.Unix(sec, 0))
	if age < 0 {
		return 0, nil
	}
	return int(age.Hours() / 24), nil
}
