package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/profit-tracker-go/internal/shared/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileFormats(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	files := map[string]string{
		"config.toml": "data_dir = \"/srv/books\"\ncurrency = \"€\"\nreport_type = [\"pdf\", \"xlsx\"]\n\n[backup]\nbucket = \"books\"\n",
		"config.yaml": "data_dir: /srv/books\ncurrency: €\nreport_type: [pdf, xlsx]\nbackup:\n  bucket: books\n",
		"config.json": `{"data_dir": "/srv/books", "currency": "€", "report_type": ["pdf", "xlsx"], "backup": {"bucket": "books"}}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, dir, name, content))
			require.NoError(t, err)
			assert.Equal(t, "/srv/books", cfg.DataDir)
			assert.Equal(t, "€", cfg.Currency)
			assert.Equal(t, []string{"pdf", "xlsx"}, cfg.ReportType)
			assert.Equal(t, "books", cfg.Backup.Bucket)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(dir)
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeFile(t, dir, "config.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config file format")
}

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestResolveArgsDefaults(t *testing.T) {
	got, err := ResolveArgs(NewConfigRepository(), types.CLIArgs{}, envOf(nil))
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, got.DataDir)
	assert.Equal(t, DefaultCurrency, got.Currency)
	assert.Equal(t, DefaultLogLevel, got.LogLevel)
	assert.Equal(t, []string{"csv"}, got.ReportType)
	assert.Empty(t, got.Dir)
}

func TestResolveArgsPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml",
		"data_dir: "+filepath.Join(dir, "from-file")+"\nlog_level: debug\ncurrency: $\nbackup:\n  bucket: file-bucket\n  region: eu-west-2\n")

	env := envOf(map[string]string{
		EnvConfigFile: cfgPath,
		EnvDataDir:    filepath.Join(dir, "from-env"),
	})

	got, err := ResolveArgs(NewConfigRepository(), types.CLIArgs{
		LogLevel: "error",
		Backup:   types.BackupConfig{Bucket: "flag-bucket"},
	}, env)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, got.ConfigFile)
	assert.Equal(t, filepath.Join(dir, "from-env"), got.DataDir)
	assert.Equal(t, "error", got.LogLevel)
	assert.Equal(t, "$", got.Currency)
	assert.Equal(t, "flag-bucket", got.Backup.Bucket)
	assert.Equal(t, "eu-west-2", got.Backup.Region)
}

func TestResolveArgsBadConfigFile(t *testing.T) {
	_, err := ResolveArgs(NewConfigRepository(), types.CLIArgs{ConfigFile: "/nonexistent/config.toml"}, envOf(nil))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, ".env")))

	t.Setenv(EnvCurrency, "")
	require.NoError(t, os.Unsetenv(EnvCurrency))
	path := writeFile(t, dir, ".env", EnvCurrency+"=€\n")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "€", os.Getenv(EnvCurrency))
}
