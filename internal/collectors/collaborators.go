package collectors

import (
	"context"
	"errors"
)

// ErrNoHistory is returned by a History implementation when the project has
// no version control history to read.
var ErrNoHistory = errors.New("no VCS history available")

// ErrNoManifest is returned by a DependencyAuditor when no dependency
// manifest was found in the project.
var ErrNoManifest = errors.New("no dependency manifest found")

// SourceScanner walks project files. Implementations exclude VCS and build
// directories from listings.
type SourceScanner interface {
	// ListSourceFiles returns the source file paths under root.
	ListSourceFiles(root string) ([]string, error)

	// ReadFile returns the text of a file. Collectors treat a read error
	// as an absent measurement, never as a run failure.
	ReadFile(path string) (string, error)

	// FindAny returns which of the named files or directories exist
	// directly under root. Nested paths are not searched; use FindByName
	// for names that may live anywhere in the tree.
	FindAny(root string, names ...string) []string

	// FindByName walks the whole tree under root and returns the relative
	// paths of files whose base name matches one of names.
	FindByName(root string, names ...string) []string
}

// Contributor identifies one commit author in the analysis window.
type Contributor struct {
	Name  string
	Email string
}

// History reads VCS activity over a trailing window of days.
type History interface {
	CommitCount(ctx context.Context, sinceDays int) (int, error)
	FixCommitCount(ctx context.Context, sinceDays int) (int, error)
	Contributors(ctx context.Context, sinceDays int) ([]Contributor, error)

	// DaysSinceLastCommit returns how many days ago the newest commit landed.
	DaysSinceLastCommit(ctx context.Context) (int, error)

	// AgeDays returns the age of the repository in days.
	AgeDays(ctx context.Context) (int, error)

	// TagCount returns the number of release tags.
	TagCount(ctx context.Context) (int, error)
}

// DependencyAudit summarizes the project's declared dependencies.
type DependencyAudit struct {
	Total      int
	Outdated   int
	Vulnerable int
}

// DependencyAuditor inspects the project's dependency manifests.
type DependencyAuditor interface {
	Audit(ctx context.Context) (DependencyAudit, error)
}

// Deps bundles the collaborators shared by all collectors.
type Deps struct {
	Scanner SourceScanner
	History History
	Audit   DependencyAuditor
}
