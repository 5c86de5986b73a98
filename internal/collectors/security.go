package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	defaultOutdatedRatio = 35.0

	// sensitiveFileRisk is the per-file penalty for credentials or keys
	// tracked in the project tree.
	sensitiveFileRisk = 35.0
)

// sensitiveNames are files that should never live in a project tree.
var sensitiveNames = []string{
	".env", "id_rsa", "id_dsa", "credentials.json",
	"secrets.yml", "secrets.yaml", ".pgpass", ".netrc",
}

// SecurityCollector measures vulnerable or stale dependencies and
// credential-like files in the tree.
type SecurityCollector struct {
	deps Deps
	opts Options
}

func (c *SecurityCollector) Category() string { return "security" }
func (c *SecurityCollector) Name() string     { return "Security Risk" }
func (c *SecurityCollector) Description() string {
	return "Measures vulnerable dependencies and sensitive files"
}

func (c *SecurityCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	var defaulted []string

	if audit, err := c.deps.Audit.Audit(ctx); err == nil {
		factors["vulnerabilities"] = models.Clamp(ratio(audit.Vulnerable, audit.Total))
		factors["outdated_ratio"] = models.Clamp(ratio(audit.Outdated, audit.Total))
	} else {
		factors["vulnerabilities"] = defaultVulnerabilities
		factors["outdated_ratio"] = defaultOutdatedRatio
		defaulted = append(defaulted, "vulnerabilities", "outdated_ratio")
	}

	found := c.deps.Scanner.FindByName(c.opts.ProjectPath, sensitiveNames...)
	factors["sensitive_files"] = models.Clamp(float64(len(found)) * sensitiveFileRisk)

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return factors, defaulted, nil
}
