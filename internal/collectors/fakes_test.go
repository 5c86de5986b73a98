package collectors

import (
	"context"
	"errors"
	"path/filepath"
)

// fakeScanner serves canned files and lookups. deepFiles holds relative
// paths anywhere in the tree, served by FindByName.
type fakeScanner struct {
	files     []string
	content   map[string]string
	present   map[string]bool
	deepFiles []string
	listErr   error
}

func (s *fakeScanner) ListSourceFiles(root string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.files, nil
}

func (s *fakeScanner) ReadFile(path string) (string, error) {
	if text, ok := s.content[path]; ok {
		return text, nil
	}
	return "", errors.New("unreadable")
}

func (s *fakeScanner) FindAny(root string, names ...string) []string {
	var found []string
	for _, name := range names {
		if s.present[name] {
			found = append(found, name)
		}
	}
	return found
}

func (s *fakeScanner) FindByName(root string, names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	var found []string
	for _, path := range s.deepFiles {
		if want[filepath.Base(path)] {
			found = append(found, path)
		}
	}
	return found
}

// fakeHistory answers every query from fixed values, or fails everything
// with err.
type fakeHistory struct {
	commits      int
	fixes        int
	contributors []Contributor
	lastCommit   int
	ageDays      int
	tags         int
	err          error
}

func (h *fakeHistory) CommitCount(ctx context.Context, sinceDays int) (int, error) {
	return h.commits, h.err
}

func (h *fakeHistory) FixCommitCount(ctx context.Context, sinceDays int) (int, error) {
	return h.fixes, h.err
}

func (h *fakeHistory) Contributors(ctx context.Context, sinceDays int) ([]Contributor, error) {
	return h.contributors, h.err
}

func (h *fakeHistory) DaysSinceLastCommit(ctx context.Context) (int, error) {
	return h.lastCommit, h.err
}

func (h *fakeHistory) AgeDays(ctx context.Context) (int, error) {
	return h.ageDays, h.err
}

func (h *fakeHistory) TagCount(ctx context.Context) (int, error) {
	return h.tags, h.err
}

type fakeAudit struct {
	audit DependencyAudit
	err   error
}

func (a *fakeAudit) Audit(ctx context.Context) (DependencyAudit, error) {
	return a.audit, a.err
}

func testDeps() Deps {
	return Deps{
		Scanner: &fakeScanner{},
		History: &fakeHistory{},
		Audit:   &fakeAudit{},
	}
}

func nContributors(n int) []Contributor {
	list := make([]Contributor, n)
	for i := range list {
		list[i] = Contributor{Name: "dev", Email: string(rune('a'+i)) + "@example.com"}
	}
	return list
}
