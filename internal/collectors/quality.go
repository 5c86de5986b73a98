package collectors

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	// testCoverageScale turns the test-file share into a risk discount:
	// one test file per five source files zeroes the factor.
	testCoverageScale = 500.0

	defaultBugDensity = 25.0

	docRiskWithReadme = 15.0
	docRiskBare       = 70.0
)

// QualityCollector measures fix pressure, test presence, and documentation.
type QualityCollector struct {
	deps Deps
	opts Options
}

func (c *QualityCollector) Category() string { return "quality" }
func (c *QualityCollector) Name() string     { return "Quality Risk" }
func (c *QualityCollector) Description() string {
	return "Measures bug density, test presence, and documentation"
}

func (c *QualityCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	total, terr := c.deps.History.CommitCount(ctx, c.opts.PeriodDays)
	fixes, ferr := c.deps.History.FixCommitCount(ctx, c.opts.PeriodDays)
	if terr == nil && ferr == nil {
		if total == 0 {
			factors["bug_density"] = 0
		} else {
			factors["bug_density"] = models.Clamp(float64(fixes) / float64(total) * 100)
		}
	} else {
		factors["bug_density"] = defaultBugDensity
		defaulted = append(defaulted, "bug_density")
	}

	files, err := c.deps.Scanner.ListSourceFiles(c.opts.ProjectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("listing source files: %w", err)
	}
	factors["test_presence"] = testPresenceRisk(files)

	if found := c.deps.Scanner.FindAny(c.opts.ProjectPath,
		"README.md", "README.rst", "README.txt", "README", "docs"); len(found) > 0 {
		factors["doc_presence"] = docRiskWithReadme
	} else {
		factors["doc_presence"] = docRiskBare
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}

// testPresenceRisk derives a risk value from the share of test files in the
// source tree. No source files at all is treated as maximal test risk.
func testPresenceRisk(files []string) float64 {
	if len(files) == 0 {
		return 100
	}
	tests := 0
	for _, path := range files {
		lower := strings.ToLower(path)
		if strings.Contains(lower, "_test.") || strings.Contains(lower, ".test.") ||
			strings.Contains(lower, ".spec.") || strings.Contains(lower, "/tests/") ||
			strings.HasPrefix(lower, "test_") || strings.Contains(lower, "/test_") {
			tests++
		}
	}
	share := float64(tests) / float64(len(files))
	return models.Clamp(100 - share*testCoverageScale)
}
