package collectors

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

// Neutral defaults used when a collaborator cannot answer. Each factor has
// its own documented default rather than one shared constant.
const (
	defaultDependencies    = 35.0
	defaultVulnerabilities = 20.0
	defaultCodeChurn       = 40.0
)

// churnScale converts commits per day into the code_churn factor.
const churnScale = 15.0

// complexityKeywords is the cyclomatic proxy: branching, loop, and
// exception keywords counted per source file.
var complexityKeywords = map[string]bool{
	"if": true, "elif": true, "elseif": true,
	"for": true, "foreach": true, "while": true, "until": true,
	"case": true, "switch": true, "when": true,
	"catch": true, "except": true, "rescue": true, "trap": true,
}

// TechnicalCollector measures code complexity, dependency staleness,
// churn, and known-vulnerable dependencies.
type TechnicalCollector struct {
	deps Deps
	opts Options
}

func (c *TechnicalCollector) Category() string { return "technical" }
func (c *TechnicalCollector) Name() string     { return "Technical Risk" }
func (c *TechnicalCollector) Description() string {
	return "Measures code complexity, dependency staleness, and churn"
}

func (c *TechnicalCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	files, err := c.deps.Scanner.ListSourceFiles(c.opts.ProjectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("listing source files: %w", err)
	}
	factors["complexity"] = models.Clamp(meanComplexity(c.deps.Scanner, files))

	if audit, err := c.deps.Audit.Audit(ctx); err == nil {
		factors["dependencies"] = models.Clamp(ratio(audit.Outdated, audit.Total))
		factors["vulnerabilities"] = models.Clamp(ratio(audit.Vulnerable, audit.Total))
	} else {
		factors["dependencies"] = defaultDependencies
		factors["vulnerabilities"] = defaultVulnerabilities
		defaulted = append(defaulted, "dependencies", "vulnerabilities")
	}

	if commits, err := c.deps.History.CommitCount(ctx, c.opts.PeriodDays); err == nil {
		perDay := float64(commits) / float64(c.opts.PeriodDays)
		factors["code_churn"] = models.Clamp(perDay * churnScale)
	} else {
		factors["code_churn"] = defaultCodeChurn
		defaulted = append(defaulted, "code_churn")
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}

// meanComplexity averages the branching-keyword count across source files.
// Unreadable files are skipped; an empty project scores zero.
func meanComplexity(scanner SourceScanner, files []string) float64 {
	if len(files) == 0 {
		return 0
	}
	total := 0
	counted := 0
	for _, path := range files {
		text, err := scanner.ReadFile(path)
		if err != nil {
			continue
		}
		total += countKeywords(text)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return float64(total) / float64(counted)
}

func countKeywords(text string) int {
	count := 0
	for _, token := range strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_')
	}) {
		if complexityKeywords[strings.ToLower(token)] {
			count++
		}
	}
	return count
}

// ratio returns part/whole as a percentage, guarding division by zero.
func ratio(part, whole int) float64 {
	if whole < 1 {
		whole = 1
	}
	return float64(part) / float64(whole) * 100
}
