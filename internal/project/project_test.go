package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/harrison/manifold/internal/filespec"
)

func TestLoadWithOverrides(t *testing.T) {
	root := t.TempDir()
	config := `name: warehouse
model-paths: ["marts", "staging"]
seed-paths: ["data"]
`
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Name != "warehouse" {
		t.Errorf("Name = %q, want warehouse", p.Name)
	}
	if !reflect.DeepEqual(p.ModelPaths, []string{"marts", "staging"}) {
		t.Errorf("ModelPaths = %v", p.ModelPaths)
	}
	if !reflect.DeepEqual(p.SeedPaths, []string{"data"}) {
		t.Errorf("SeedPaths = %v", p.SeedPaths)
	}
	// Unspecified path lists keep their defaults.
	if !reflect.DeepEqual(p.MacroPaths, []string{"macros"}) {
		t.Errorf("MacroPaths = %v, want default", p.MacroPaths)
	}
	if p.Root == "" || !filepath.IsAbs(p.Root) {
		t.Errorf("Root = %q, want absolute path", p.Root)
	}
}

func TestLoadMissingConfigIsError(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("a directory without a project config must not load")
	}
}

func TestLoadMissingNameIsError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("model-paths: [models]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Error("a project config without a name must not load")
	}
}

func TestLoadMalformedConfigIsError(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("name: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(root); err == nil {
		t.Error("malformed project config must not load")
	}
}

func TestGenericTestPaths(t *testing.T) {
	p := Default("proj", "/tmp/proj")
	p.TestPaths = []string{"tests", "more_tests"}

	want := []string{
		filepath.Join("tests", GenericTestDirName),
		filepath.Join("more_tests", GenericTestDirName),
	}
	if got := p.GenericTestPaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("GenericTestPaths() = %v, want %v", got, want)
	}
}

func TestAllSourcePathsDeduplicates(t *testing.T) {
	p := Default("proj", "/tmp/proj")
	p.SeedPaths = []string{"models", "seeds"}

	got := p.AllSourcePaths()
	seen := make(map[string]int)
	for _, dir := range got {
		seen[dir]++
	}
	if seen["models"] != 1 {
		t.Errorf("models appears %d times in %v, want once", seen["models"], got)
	}
	if seen["seeds"] != 1 {
		t.Errorf("seeds missing from %v", got)
	}
}

func TestFileTypesCoversEveryParseType(t *testing.T) {
	p := Default("proj", "/tmp/proj")
	fileTypes := FileTypes(p)

	for _, pt := range filespec.ParseTypeOrder {
		info, ok := fileTypes[pt]
		if !ok {
			t.Errorf("FileTypes is missing %v", pt)
			continue
		}
		if len(info.Paths) == 0 {
			t.Errorf("%v has no search paths", pt)
		}
		if len(info.Extensions) == 0 {
			t.Errorf("%v has no extensions", pt)
		}
		if info.Parser != pt.ParserName() {
			t.Errorf("%v parser label = %q, want %q", pt, info.Parser, pt.ParserName())
		}
	}
}

func TestFileTypesModelExtensions(t *testing.T) {
	p := Default("proj", "/tmp/proj")
	info := FileTypes(p)[filespec.ParseTypeModel]
	if !reflect.DeepEqual(info.Extensions, []string{".sql", ".py"}) {
		t.Errorf("model extensions = %v", info.Extensions)
	}
}

func TestFileTypesSchemaSearchesAllSourcePaths(t *testing.T) {
	p := Default("proj", "/tmp/proj")
	info := FileTypes(p)[filespec.ParseTypeSchema]
	if !reflect.DeepEqual(info.Paths, p.AllSourcePaths()) {
		t.Errorf("schema paths = %v, want %v", info.Paths, p.AllSourcePaths())
	}
	if !reflect.DeepEqual(info.Extensions, []string{".yml", ".yaml"}) {
		t.Errorf("schema extensions = %v", info.Extensions)
	}
}
