package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employeetracker/internal/config"
	"employeetracker/internal/store/sqlite"
)

func useTempProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "employees.db")

	previous := configPath
	configPath = filepath.Join(dir, "employeetracker.yaml")
	t.Cleanup(func() { configPath = previous })

	contents := "version: 1\ndatabase:\n  dsn: \"sqlite://" + dbPath + "\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))
	return "sqlite://" + dbPath
}

func TestSchemaAndActionCommands(t *testing.T) {
	dsn := useTempProject(t)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runSchema(cmd, true))
	assert.Contains(t, out.String(), "Sample data loaded.")

	out.Reset()
	require.NoError(t, runAction(cmd, "Add Department", map[string]string{"name": "Research"}))
	assert.Contains(t, out.String(), "Adding department...")
	assert.Contains(t, out.String(), "Department added successfully.")

	out.Reset()
	require.NoError(t, runAction(cmd, "View All Departments", nil))
	assert.Contains(t, out.String(), "Research")

	require.Error(t, runAction(cmd, "Fire Everyone", nil))

	ctx := context.Background()
	db, err := sqlite.New(ctx, dsn)
	require.NoError(t, err)
	defer db.Release(ctx)

	res, err := db.Execute(ctx, "SELECT name FROM department WHERE name = $1", []any{"Research"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
}

func TestInitWritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()
	previous := configPath
	configPath = filepath.Join(dir, "employeetracker.yaml")
	t.Cleanup(func() { configPath = previous })

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, runInit(cmd, "sqlite://:memory:"))
	cfg, err := config.LoadProjectConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://:memory:", cfg.Database.DSN)

	assert.Error(t, runInit(cmd, "sqlite://:memory:"), "second init must not overwrite")
}

func TestInitRejectsUnknownScheme(t *testing.T) {
	previous := configPath
	configPath = filepath.Join(t.TempDir(), "employeetracker.yaml")
	t.Cleanup(func() { configPath = previous })

	assert.Error(t, runInit(&cobra.Command{}, "mysql://localhost/employees"))
}
