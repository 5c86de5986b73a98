package collectors

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// ManifestAuditor is the default DependencyAuditor. It counts declared
// dependencies from whichever manifests the project carries (go.mod,
// package.json, requirements.txt) and flags pre-1.0 pins as outdated
// candidates. It has no advisory database, so Vulnerable stays zero unless
// a richer auditor is plugged in.
type ManifestAuditor struct {
	root string
}

// compile-time interface check
var _ DependencyAuditor = (*ManifestAuditor)(nil)

// NewManifestAuditor creates an auditor rooted at the project path.
func NewManifestAuditor(root string) *ManifestAuditor {
	return &ManifestAuditor{root: root}
}

// Audit scans the project's manifests. Returns ErrNoManifest when none exist.
func (a *ManifestAuditor) Audit(ctx context.Context) (DependencyAudit, error) {
	var audit DependencyAudit
	found := false

	if total, outdated, ok := a.auditGoMod(); ok {
		audit.Total += total
		audit.Outdated += outdated
		found = true
	}
	if total, outdated, ok := a.auditPackageJSON(); ok {
		audit.Total += total
		audit.Outdated += outdated
		found = true
	}
	if total, outdated, ok := a.auditRequirements(); ok {
		audit.Total += total
		audit.Outdated += outdated
		found = true
	}

	if !found {
		return DependencyAudit{}, ErrNoManifest
	}
	return audit, nil
}

func (a *ManifestAuditor) auditGoMod() (total, outdated int, ok bool) {
	data, err := os.ReadFile(filepath.Join(a.root, "go.mod"))
	if err != nil {
		return 0, 0, false
	}

	inRequire := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "require ("):
			inRequire = true
			continue
		case inRequire && line == ")":
			inRequire = false
			continue
		}
		var spec string
		if inRequire && line != "" && !strings.HasPrefix(line, "//") {
			spec = line
		} else if strings.HasPrefix(line, "require ") {
			spec = strings.TrimPrefix(line, "require ")
		} else {
			continue
		}
		fields := strings.Fields(spec)
		if len(fields) < 2 {
			continue
		}
		total++
		if strings.HasPrefix(fields[1], "v0.") {
			outdated++
		}
	}
	return total, outdated, true
}

func (a *ManifestAuditor) auditPackageJSON() (total, outdated int, ok bool) {
	data, err := os.ReadFile(filepath.Join(a.root, "package.json"))
	if err != nil {
		return 0, 0, false
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return 0, 0, false
	}

	count := func(deps map[string]string) {
		for _, version := range deps {
			total++
			v := strings.TrimLeft(version, "^~>=< ")
			if strings.HasPrefix(v, "0.") {
				outdated++
			}
		}
	}
	count(manifest.Dependencies)
	count(manifest.DevDependencies)
	return total, outdated, true
}

func (a *ManifestAuditor) auditRequirements() (total, outdated int, ok bool) {
	data, err := os.ReadFile(filepath.Join(a.root, "requirements.txt"))
	if err != nil {
		return 0, 0, false
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		total++
		if idx := strings.Index(line, "==0."); idx >= 0 {
			outdated++
		}
	}
	return total, outdated, true
}
