// Package project loads per-project configuration: the project name and the
// declared source root directories for each category of source file.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the fixed name of the project configuration file.
const ConfigFileName = "manifold_project.yml"

// Project describes one project in the build tree: its name, its root on
// disk, and the source root directories searched per parse type.
type Project struct {
	// Name is the unique project name used in file identities.
	Name string `yaml:"name"`

	// Root is the absolute path of the project root. Set by the loader,
	// not read from the config file.
	Root string `yaml:"-"`

	// ModelPaths lists root directories searched for model files.
	ModelPaths []string `yaml:"model-paths"`

	// MacroPaths lists root directories searched for macro files.
	MacroPaths []string `yaml:"macro-paths"`

	// SnapshotPaths lists root directories searched for snapshot files.
	SnapshotPaths []string `yaml:"snapshot-paths"`

	// AnalysisPaths lists root directories searched for analysis files.
	AnalysisPaths []string `yaml:"analysis-paths"`

	// TestPaths lists root directories searched for singular test files.
	// Generic tests live in the reserved "generic" subdirectory of each
	// test path.
	TestPaths []string `yaml:"test-paths"`

	// SeedPaths lists root directories searched for seed files.
	SeedPaths []string `yaml:"seed-paths"`

	// DocsPaths lists root directories searched for documentation files.
	DocsPaths []string `yaml:"docs-paths"`
}

// GenericTestDirName is the reserved subdirectory of each test path that
// holds generic test definitions. Files under it are owned exclusively by
// the generic test parse type.
const GenericTestDirName = "generic"

// Default returns a Project with the conventional directory layout.
func Default(name, root string) *Project {
	return &Project{
		Name:          name,
		Root:          root,
		ModelPaths:    []string{"models"},
		MacroPaths:    []string{"macros"},
		SnapshotPaths: []string{"snapshots"},
		AnalysisPaths: []string{"analyses"},
		TestPaths:     []string{"tests"},
		SeedPaths:     []string{"seeds"},
		DocsPaths:     []string{"models"},
	}
}

// Load reads the project configuration from root. A missing config file is
// an error: a directory without one is not a project. Path lists omitted
// from the file keep their defaults.
func Load(root string) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	path := filepath.Join(absRoot, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config %s: %w", path, err)
	}

	cfg := Default("", absRoot)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config %s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("project config %s is missing a name", path)
	}
	cfg.Root = absRoot

	return cfg, nil
}

// GenericTestPaths returns the generic-test root directories, one per test
// path.
func (p *Project) GenericTestPaths() []string {
	paths := make([]string, 0, len(p.TestPaths))
	for _, tp := range p.TestPaths {
		paths = append(paths, filepath.Join(tp, GenericTestDirName))
	}
	return paths
}

// AllSourcePaths returns the union of roots that can contain schema files,
// in declaration order with duplicates removed.
func (p *Project) AllSourcePaths() []string {
	var all []string
	seen := make(map[string]bool)
	for _, group := range [][]string{
		p.ModelPaths, p.SeedPaths, p.SnapshotPaths, p.AnalysisPaths, p.MacroPaths,
	} {
		for _, dir := range group {
			if !seen[dir] {
				seen[dir] = true
				all = append(all, dir)
			}
		}
	}
	return all
}
