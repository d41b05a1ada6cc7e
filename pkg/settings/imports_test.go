package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bombadil/pkg/testutil"
)

func TestResolveImports_EmptyListIsNoOp(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	root := &Settings{DotfilesDir: env.DotfilesRoot}
	before := *root

	var diag strings.Builder
	require.NoError(t, root.resolveImports(env.DotfilesRoot, &diag))

	assert.Equal(t, before, *root)
	assert.Empty(t, diag.String())
}

func TestResolveImports_RelativeAnchoredOnDotfilesRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfilesFile("profiles/import.toml", `
[settings.dots]
vim = { source = "vim", target = ".vimrc" }
`)

	// A same-named decoy in the working directory must not be picked up
	workDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(workDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "profiles"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "profiles", "import.toml"),
		[]byte("[settings.dots]\nvim = { source = \"decoy\", target = \".vimrc\" }\n"), 0644))

	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import:      []ImportPath{{Path: "profiles/import.toml"}},
	}

	var diag strings.Builder
	require.NoError(t, root.resolveImports(env.DotfilesRoot, &diag))

	require.Contains(t, root.Settings.Dots, "vim")
	assert.Equal(t, "vim", root.Settings.Dots["vim"].Source)
	assert.Empty(t, diag.String())
}

func TestResolveImports_AbsolutePathUsedAsIs(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	outside := filepath.Join(t.TempDir(), "shared.toml")
	require.NoError(t, os.WriteFile(outside,
		[]byte("[settings]\nprehooks = [\"echo shared\"]\n"), 0644))

	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import:      []ImportPath{{Path: outside}},
	}

	var diag strings.Builder
	require.NoError(t, root.resolveImports(env.DotfilesRoot, &diag))

	assert.Equal(t, []string{"echo shared"}, root.Settings.Prehooks)
}

func TestResolveImports_MissingImportSkipped(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import: []ImportPath{
			{Path: "missing-one.toml"},
			{Path: "missing-two.toml"},
		},
	}

	var diag strings.Builder
	err := root.resolveImports(env.DotfilesRoot, &diag)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(diag.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Unable to find bombadil import file:")
	assert.Contains(t, lines[0], "missing-one.toml")
	assert.Contains(t, lines[1], "missing-two.toml")
}

func TestResolveImports_MalformedImportSkipped(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfilesFile("bad.toml", "[settings\n")
	env.WriteDotfilesFile("good.toml", "[settings]\nprehooks = [\"echo good\"]\n")

	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import: []ImportPath{
			{Path: "bad.toml"},
			{Path: "good.toml"},
		},
	}

	var diag strings.Builder
	err := root.resolveImports(env.DotfilesRoot, &diag)
	require.NoError(t, err)

	// The bad import is reported, the good one still lands
	assert.Contains(t, diag.String(), "Error loading settings from:")
	assert.Contains(t, diag.String(), "bad.toml")
	assert.Equal(t, []string{"echo good"}, root.Settings.Prehooks)
}

func TestResolveImports_LaterImportSeesEarlierMerges(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfilesFile("first.toml", "[settings]\nprehooks = [\"echo first\"]\n")
	env.WriteDotfilesFile("second.toml", "[settings]\nprehooks = [\"echo second\"]\n")

	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import: []ImportPath{
			{Path: "first.toml"},
			{Path: "second.toml"},
		},
	}

	var diag strings.Builder
	require.NoError(t, root.resolveImports(env.DotfilesRoot, &diag))

	assert.Equal(t, []string{"echo first", "echo second"}, root.Settings.Prehooks)
}

func TestResolveImports_NestedImportsNotWalked(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDotfilesFile("level-one.toml", `
[settings]
prehooks = ["echo one"]

[[import]]
path = "level-two.toml"
`)
	env.WriteDotfilesFile("level-two.toml", "[settings]\nprehooks = [\"echo two\"]\n")

	root := &Settings{
		DotfilesDir: env.DotfilesRoot,
		Import:      []ImportPath{{Path: "level-one.toml"}},
	}

	var diag strings.Builder
	require.NoError(t, root.resolveImports(env.DotfilesRoot, &diag))

	// The chained entry is merged into the import list but its file is
	// never loaded in this pass.
	assert.Equal(t, []string{"echo one"}, root.Settings.Prehooks)
	assert.Equal(t, []ImportPath{
		{Path: "level-one.toml"},
		{Path: "level-two.toml"},
	}, root.Import)
	assert.Empty(t, diag.String())
}
