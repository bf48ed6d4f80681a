package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dosewise/backend/internal/domain"
	"github.com/dosewise/backend/internal/infrastructure/datafile"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func exampleDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := datafile.WriteExamples(dir, false)
	require.NoError(t, err)
	return dir
}

func TestInitCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	out, err := runCLI(t, "", "init", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "products.json")
	assert.FileExists(t, filepath.Join(dir, "dosages.json"))

	_, err = runCLI(t, "", "init", "--data-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = runCLI(t, "", "init", "--data-dir", dir, "--force")
	assert.NoError(t, err)
}

func TestEvaluateCmd(t *testing.T) {
	dir := exampleDataDir(t)

	t.Run("text report", func(t *testing.T) {
		out, err := runCLI(t, "", "evaluate", "Example Pre-Workout", "--data-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Product Evaluation Report: Example Pre-Workout")
		assert.Contains(t, out, "Cost per serving: $1.33")
		assert.Contains(t, out, "(Analyzed 2 of 3 ingredients)")
		assert.Contains(t, out, "Missing cost data:")
	})

	t.Run("json with filter", func(t *testing.T) {
		out, err := runCLI(t, "", "evaluate", "Example Pre-Workout",
			"--data-dir", dir, "-i", "Caffeine Anhydrous", "--format", "json")
		require.NoError(t, err)

		var eval domain.ProductEvaluation
		require.NoError(t, json.Unmarshal([]byte(out), &eval))
		assert.Equal(t, 1, eval.AnalyzedIngredients)
		assert.Equal(t, 3, eval.TotalIngredients)
		assert.InDelta(t, 0.0999, eval.TotalValue, 1e-12)
	})

	t.Run("unknown product suggests names", func(t *testing.T) {
		_, err := runCLI(t, "", "evaluate", "pre-workout", "--data-dir", dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Contains(t, err.Error(), "did you mean: Example Pre-Workout")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runCLI(t, "", "evaluate", "Example Pre-Workout", "--data-dir", dir, "--format", "xml")
		assert.Error(t, err)
	})
}

func TestMissingDataHint(t *testing.T) {
	_, err := runCLI(t, "", "costs", "--data-dir", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataFileNotFound)
	assert.Contains(t, err.Error(), "dosewise init")
}

func TestCostsCmd(t *testing.T) {
	dir := exampleDataDir(t)

	out, err := runCLI(t, "", "costs", "--data-dir", dir, "--format", "json")
	require.NoError(t, err)

	var costs []domain.IngredientCost
	require.NoError(t, json.Unmarshal([]byte(out), &costs))
	require.Len(t, costs, 2)
	assert.Equal(t, "Beta-Alanine", costs[0].Name)
	assert.InDelta(t, 19.99/500000, costs[0].CostPerMg, 1e-15)
}

func TestRankCmd(t *testing.T) {
	dir := exampleDataDir(t)

	out, err := runCLI(t, "", "rank", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PRODUCT")
	assert.Contains(t, out, "Example Pre-Workout")
	assert.Contains(t, out, "2/3")
}

func TestExportCmd(t *testing.T) {
	dir := exampleDataDir(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := runCLI(t, "", "export", "--data-dir", dir, "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 1 products")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "product", records[0][0])
	assert.Equal(t, "Caffeine Anhydrous", records[1][4])
	assert.Equal(t, "skipped", records[3][5])
}

func TestAnalyzeCmd(t *testing.T) {
	dir := exampleDataDir(t)

	t.Run("one product then stop", func(t *testing.T) {
		out, err := runCLI(t, "1\nn\nn\n", "analyze", "--data-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "1. Example Pre-Workout")
		assert.Contains(t, out, "Analyzing product...")
		assert.Contains(t, out, "Cost-effectiveness score:")
		assert.Contains(t, out, "Caffeine Anhydrous:")
		assert.Contains(t, out, "Thank you for using DoseWise!")
	})

	t.Run("filter and hide ingredients", func(t *testing.T) {
		out, err := runCLI(t, "1\ny\n2\nn\n", "analyze", "--data-dir", dir, "--hide-ingredients")
		require.NoError(t, err)
		assert.Contains(t, out, "(Analyzed 1 of 3 ingredients)")
		assert.NotContains(t, out, "Ingredient Analysis")
	})

	t.Run("zero exits immediately", func(t *testing.T) {
		out, err := runCLI(t, "0\n", "analyze", "--data-dir", dir)
		require.NoError(t, err)
		assert.NotContains(t, out, "Analyzing product...")
	})

	t.Run("closed input exits cleanly", func(t *testing.T) {
		_, err := runCLI(t, "", "analyze", "--data-dir", dir)
		assert.NoError(t, err)
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dosewise dev\n", out)
}
