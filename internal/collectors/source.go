package collectors

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// maxFileBytes caps how much of a single file the scanner reads.
const maxFileBytes = 1 << 20

// maxSourceFiles caps the listing so a huge monorepo does not stall a run.
const maxSourceFiles = 5000

var skipDirs = map[string]bool{
	".git": true, ".svn": true, ".hg": true,
	"node_modules": true, "vendor": true, "dist": true, "build": true,
	"bin": true, "obj": true, "target": true, "__pycache__": true,
	".idea": true, ".vscode": true, ".terraform": true,
}

var sourceExts = map[string]bool{
	".go": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".py": true, ".rb": true, ".php": true, ".java": true, ".kt": true,
	".cs": true, ".c": true, ".cc": true, ".cpp": true, ".h": true, ".hpp": true,
	".rs": true, ".swift": true, ".sh": true, ".ps1": true, ".psm1": true,
}

// FSScanner is the default SourceScanner backed by the local filesystem.
type FSScanner struct{}

// compile-time interface check
var _ SourceScanner = (*FSScanner)(nil)

// NewFSScanner creates a filesystem source scanner.
func NewFSScanner() *FSScanner {
	return &FSScanner{}
}

// ListSourceFiles walks root and returns source files, skipping VCS and
// build directories. The result is sorted for deterministic runs.
func (s *FSScanner) ListSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree is skipped, not fatal
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExts[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
			if len(files) >= maxSourceFiles {
				return filepath.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile returns up to maxFileBytes of the file's content.
func (s *FSScanner) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxFileBytes {
		data = data[:maxFileBytes]
	}
	return string(data), nil
}

// FindAny reports which of the named entries exist directly under root.
func (s *FSScanner) FindAny(root string, names ...string) []string {
	var found []string
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			found = append(found, name)
		}
	}
	return found
}

// FindByName walks the tree under root and returns relative paths whose
// base name matches one of names. Unlike ListSourceFiles it descends into
// dot directories, since credential files often live there.
func (s *FSScanner) FindByName(root string, names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}

	var found []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if want[d.Name()] {
			if rel, err := filepath.Rel(root, path); err == nil {
				found = append(found, rel)
			}
			if len(found) >= maxSourceFiles {
				return filepath.SkipAll
			}
		}
		return nil
	})

	sort.Strings(found)
	return found
}
