//go:build unit

package controllers_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/infrastructure/controllers"
	"github.com/rios0rios0/depcheck/test/domain/commanddoubles"
	"github.com/rios0rios0/depcheck/test/domain/entitybuilders"
)

// newCommand builds a Cobra command carrying the controller's flags plus the
// persistent ones the root command defines, then parses args into it.
func newCommand(t *testing.T, controller entities.Controller, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	return cmd, out
}

func TestAnalyzeControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should print JSON and signal unused dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			Report: entitybuilders.NewAnalysisReportBuilder().
				WithUsed("express").
				WithUnused("lodash", "jest", "typescript").
				BuildReport(),
		}
		controller := controllers.NewAnalyzeController(stub)
		root := t.TempDir()
		cmd, out := newCommand(t, controller, "--json")

		// when
		err := controller.Execute(cmd, []string{root})

		// then
		require.ErrorIs(t, err, entities.ErrUnusedDependencies)
		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
		assert.Equal(t, []interface{}{"jest", "lodash", "typescript"}, doc["unused"])
		assert.Equal(t, []interface{}{"express"}, doc["used"])
		assert.InDelta(t, 4, doc["total"], 0)
		assert.Equal(t, root, stub.LastOpts.Root)
	})

	t.Run("should print empty JSON arrays when nothing is declared", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{Report: entitybuilders.NewAnalysisReportBuilder().BuildReport()}
		controller := controllers.NewAnalyzeController(stub)
		cmd, out := newCommand(t, controller, "--format", "json")

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"unused": [], "used": [], "total": 0}`, out.String())
	})

	t.Run("should print YAML when asked to", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			Report: entitybuilders.NewAnalysisReportBuilder().WithUsed("react").BuildReport(),
		}
		controller := controllers.NewAnalyzeController(stub)
		cmd, out := newCommand(t, controller, "-f", "yaml")

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.NoError(t, err)
		var doc entities.AnalysisResult
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
		assert.Equal(t, []string{"react"}, doc.Used)
		assert.Empty(t, doc.Unused)
		assert.Equal(t, 1, doc.Total)
	})

	t.Run("should list unused dependencies in a table", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			Report: entitybuilders.NewAnalysisReportBuilder().
				WithUsed("express").
				WithUnused("moment").
				WithFilesScanned(1200).
				BuildReport(),
		}
		controller := controllers.NewAnalyzeController(stub)
		cmd, out := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.ErrorIs(t, err, entities.ErrUnusedDependencies)
		assert.Contains(t, out.String(), "Found 1 unused dependencies:")
		assert.Contains(t, out.String(), "moment")
		assert.Contains(t, out.String(), "1/2")
		assert.Contains(t, out.String(), "Scanned 1,200 source files")
	})

	t.Run("should congratulate when everything is used", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			Report: entitybuilders.NewAnalysisReportBuilder().WithUsed("express").BuildReport(),
		}
		controller := controllers.NewAnalyzeController(stub)
		cmd, out := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No unused dependencies found!")
	})

	t.Run("should pass flags through as analysis options", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{Report: entitybuilders.NewAnalysisReportBuilder().BuildReport()}
		controller := controllers.NewAnalyzeController(stub)
		cmd, _ := newCommand(t, controller,
			"--ignore", "react", "--ignore", "@types/node",
			"--dirs", "src,bin",
			"--workers", "3",
			"--respect-gitignore",
		)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"react", "@types/node"}, stub.LastOpts.Ignore)
		assert.Equal(t, []string{"src", "bin"}, stub.LastOpts.Dirs)
		assert.Equal(t, 3, stub.LastOpts.Workers)
		assert.True(t, stub.LastOpts.RespectGitignore)
	})

	t.Run("should join config and flag ignore lists and let flags win elsewhere", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		cfgPath := filepath.Join(root, ".depcheck.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("ignore: [typescript]\ndirs: [lib]\nworkers: 2\n"), 0o600))
		stub := &commanddoubles.StubAnalyzeCommand{Report: entitybuilders.NewAnalysisReportBuilder().BuildReport()}
		controller := controllers.NewAnalyzeController(stub)
		cmd, _ := newCommand(t, controller, "--config", cfgPath, "--ignore", "eslint", "--workers", "5")

		// when
		err := controller.Execute(cmd, []string{root})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"typescript", "eslint"}, stub.LastOpts.Ignore)
		assert.Equal(t, []string{"lib"}, stub.LastOpts.Dirs)
		assert.Equal(t, 5, stub.LastOpts.Workers)
	})

	t.Run("should reject an unknown output format", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{}
		controller := controllers.NewAnalyzeController(stub)
		cmd, _ := newCommand(t, controller, "--format", "xml")

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should propagate analysis errors without printing", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			ExecuteErr: &entities.ConfigurationError{Root: "x", Err: entities.ErrManifestNotFound},
		}
		controller := controllers.NewAnalyzeController(stub)
		cmd, out := newCommand(t, controller)

		// when
		err := controller.Execute(cmd, []string{t.TempDir()})

		// then
		require.ErrorIs(t, err, entities.ErrManifestNotFound)
		assert.Empty(t, out.String())
	})
}
