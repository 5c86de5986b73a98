package collectors

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestAuditorGoMod(t *testing.T) {
	root := t.TempDir()
	gomod := `module example.com/app

go 1.21

require (
	github.com/spf13/cobra v1.8.0
	golang.org/x/sync v0.7.0
	// a comment line
	gopkg.in/yaml.v3 v3.0.1
)

require github.com/google/uuid v1.6.0
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(gomod), 0o644))

	audit, err := NewManifestAuditor(root).Audit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, audit.Total)
	assert.Equal(t, 1, audit.Outdated) // only x/sync is pre-1.0
	assert.Equal(t, 0, audit.Vulnerable)
}

func TestManifestAuditorPackageJSON(t *testing.T) {
	root := t.TempDir()
	pkg := `{
  "dependencies": {"express": "^4.18.0", "left-pad": "~0.1.3"},
  "devDependencies": {"jest": "29.0.0"}
}`
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(pkg), 0o644))

	audit, err := NewManifestAuditor(root).Audit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, audit.Total)
	assert.Equal(t, 1, audit.Outdated)
}

func TestManifestAuditorRequirements(t *testing.T) {
	root := t.TempDir()
	reqs := `# pinned deps
requests==2.31.0
flask==0.12.2
-r extra.txt

click==8.1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte(reqs), 0o644))

	audit, err := NewManifestAuditor(root).Audit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, audit.Total)
	assert.Equal(t, 1, audit.Outdated)
}

func TestManifestAuditorCombinesManifests(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module x\n\nrequire github.com/google/uuid v1.6.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"),
		[]byte("requests==2.31.0\n"), 0o644))

	audit, err := NewManifestAuditor(root).Audit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, audit.Total)
}

func TestManifestAuditorNoManifest(t *testing.T) {
	_, err := NewManifestAuditor(t.TempDir()).Audit(context.Background())
	assert.ErrorIs(t, err, ErrNoManifest)
}
