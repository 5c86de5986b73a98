package collectors

import (
	"context"

	"github.com/glebbrain/manager-arent-ai-sub002/internal/models"
)

const (
	buildConfigPresent = 10.0
	buildConfigAbsent  = 60.0

	ciPresent = 10.0
	ciAbsent  = 70.0

	envCommitted = 60.0
	envTemplated = 30.0
	envNone      = 20.0
)

var buildFiles = []string{
	"Makefile", "Dockerfile", "docker-compose.yml", "build.gradle",
	"pom.xml", "Taskfile.yml", "justfile",
}

var ciFiles = []string{
	".github/workflows", ".gitlab-ci.yml", "Jenkinsfile",
	".circleci", "azure-pipelines.yml",
}

// OperationalCollector measures build and CI readiness.
type OperationalCollector struct {
	deps Deps
	opts Options
}

func (c *OperationalCollector) Category() string { return "operational" }
func (c *OperationalCollector) Name() string     { return "Operational Risk" }
func (c *OperationalCollector) Description() string {
	return "Measures build reproducibility and CI presence"
}

func (c *OperationalCollector) Collect(ctx context.Context) (models.FactorSet, []string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	factors := models.FactorSet{}
	root := c.opts.ProjectPath

	if len(c.deps.Scanner.FindAny(root, buildFiles...)) > 0 {
		factors["build_config"] = buildConfigPresent
	} else {
		factors["build_config"] = buildConfigAbsent
	}

	if len(c.deps.Scanner.FindAny(root, ciFiles...)) > 0 {
		factors["ci_presence"] = ciPresent
	} else {
		factors["ci_presence"] = ciAbsent
	}

	switch {
	case len(c.deps.Scanner.FindAny(root, ".env")) > 0:
		factors["env_sprawl"] = envCommitted
	case len(c.deps.Scanner.FindAny(root, ".env.example", ".env.template")) > 0:
		factors["env_sprawl"] = envTemplated
	default:
		factors["env_sprawl"] = envNone
	}

	return factors, nil, nil
}
