package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultInput, cfg.Input)
	require.Equal(t, 3, cfg.Top)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"UpperCaseNormalized", func(c *Config) { c.Format = "JSON"; c.LogLevel = "DEBUG" }, true},
		{"EmptyInput", func(c *Config) { c.Input = "" }, false},
		{"ZeroTop", func(c *Config) { c.Top = 0 }, false},
		{"BadFormat", func(c *Config) { c.Format = "xml" }, false},
		{"BadLevel", func(c *Config) { c.LogLevel = "trace" }, false},
		{"BadLogFormat", func(c *Config) { c.LogFormat = "logfmt" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "run.yaml", "input: grid.txt\ntop: 2\nformat: yaml\n")
	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	require.Equal(t, "grid.txt", cfg.Input)
	require.Equal(t, 2, cfg.Top)
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel, "unset fields keep base values")
}

func TestLoadFile_HCL(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "run.hcl", "input = \"grid.txt\"\nlog_level = \"debug\"\n")
	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)
	require.Equal(t, "grid.txt", cfg.Input)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 3, cfg.Top)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeFile(t, "run.toml", "input = 1"), Default())
	require.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, "bad.yaml", "top: [1, 2"), Default())
	require.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.hcl", "input = "), Default())
	require.Error(t, err)
}
