package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cognasim/cognate"
	"github.com/katalvlaran/cognasim/simulate"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	logFile := filepath.Join(t.TempDir(), "cognasim.log")
	cmd.SetArgs(append([]string{"--log-file", logFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate_SwampIsDeterministic(t *testing.T) {
	a, err := execute(t, "generate", "-m", "swamp", "-l", "6", "-f", "4", "-s", "12")
	require.NoError(t, err)
	b, err := execute(t, "generate", "-m", "swamp", "-l", "6", "-f", "4", "-s", "12")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	lines := strings.Split(strings.TrimSpace(a), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "language,f1,f2,f3,f4", lines[0])
}

func TestGenerate_DolloTreeOut(t *testing.T) {
	treePath := filepath.Join(t.TempDir(), "tree.nwk")
	out, err := execute(t, "generate", "-m", "dollo", "-l", "5", "-f", "3", "-s", "1",
		"-B", "0.2", "--tree-borrowing", "0.5", "--tree-out", treePath)
	require.NoError(t, err)

	m, err := cognate.ParseHarvest(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumTaxa())
	assert.Equal(t, []string{"f_000", "f_001", "f_002"}, m.Features())

	tree, err := os.ReadFile(treePath)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(tree)), ";"))
	for _, taxon := range m.Taxa() {
		assert.Contains(t, string(tree), taxon)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := execute(t, "generate", "-m", "forest")
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)

	_, err = execute(t, "generate", "-m", "swamp", "-l", "4", "--classes-max", "9")
	require.ErrorIs(t, err, simulate.ErrModelConfiguration)

	_, err = execute(t, "generate", "-m", "chain", "--tree-out", filepath.Join(t.TempDir(), "t.nwk"))
	require.Error(t, err)
}

func TestGenerate_ConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: chain\nlanguages: 7\nfeatures: 3\nseed: 5\n"), 0o644))

	out, err := execute(t, "generate", "--config", path, "-f", "2")
	require.NoError(t, err)
	m, err := cognate.ParseHarvest(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 7, m.NumTaxa())
	assert.Equal(t, 2, m.NumFeatures())
}

func TestBatch_FilesDBAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "cognasim.prom")
	_, err := execute(t, "batch", "-m", "dollo", "-l", "6", "-f", "5", "-s", "3",
		"--name", "pure_tree", "-n", "3", "-o", dir,
		"--db", filepath.Join(dir, "runs.db"), "--parallel", "2", "--metrics-file", metricsPath)
	require.NoError(t, err)

	for _, name := range []string{"pure_tree_000.csv", "pure_tree_001.csv", "pure_tree_002.csv"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `cognasim_replicates_total{model="dollo",status="ok"} 3`)
}

func TestNexus_Glob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	csv := "language,f1,f2\nabc,0,1\nabd,1,?\n"
	for _, p := range []string{"x.csv", filepath.Join("a", "b", "y.csv")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, p), []byte(csv), 0o644))
	}

	out, err := execute(t, "nexus", filepath.Join(dir, "**", "*.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)

	nex, err := os.ReadFile(filepath.Join(dir, "a", "b", "y.nex"))
	require.NoError(t, err)
	assert.Contains(t, string(nex), "abd 01?")

	_, err = execute(t, "nexus", filepath.Join(dir, "*.none"))
	require.Error(t, err)
}

func TestGenerate_OutFileAndTreelike(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.csv")
	out, err := execute(t, "generate", "-m", "dollo", "-l", "8", "-f", "50", "-s", "4", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, path)

	out, err = execute(t, "treelike", path, "--taxa")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+8)
	assert.True(t, strings.HasPrefix(lines[0], "delta\t"))
	assert.True(t, strings.HasPrefix(lines[1], "q\t"))
}

func TestGaps(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "swamp_001.csv")
	gen, err := execute(t, "generate", "-m", "swamp", "-l", "4", "-f", "10", "-s", "2")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, []byte(gen), 0o644))

	out, err := execute(t, "gaps", in, "--coverage", "0.5,0.8")
	require.NoError(t, err)
	paths := strings.Fields(out)
	require.Equal(t, []string{
		filepath.Join(dir, "swamp_001_cov050.csv"),
		filepath.Join(dir, "swamp_001_cov080.csv"),
	}, paths)

	f, err := os.Open(paths[0])
	require.NoError(t, err)
	defer f.Close()
	m, err := cognate.ParseHarvest(f)
	require.NoError(t, err)
	assert.Equal(t, 5, m.NumFeatures())
}

func TestCLDF(t *testing.T) {
	dir := t.TempDir()
	meta := `{"tables": [{"url": "forms.csv", "dc:conformsTo": "http://cldf.clld.org/v1.0/terms.rdf#FormTable"}]}`
	forms := "ID,Language_ID,Parameter_ID,Cognateset_ID\n1,Old Võro,hand,1\n2,Finnish,hand,2\n3,Karelian,hand,2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "md.json"), []byte(meta), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forms.csv"), []byte(forms), 0o644))

	out, err := execute(t, "cldf", filepath.Join(dir, "md.json"), "-x", "Karelian")
	require.NoError(t, err)
	assert.Equal(t, "language,hand\nFinnish,1\nOld_Voro,0\n", out)
}
