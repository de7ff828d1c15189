package verifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xPolygon/rsa-verifier/chain"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Default(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, "library", config.Backend)
	assert.Equal(t, chain.Berlin, config.Fork)
	assert.GreaterOrEqual(t, config.Workers, 1)
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	t.Parallel()

	config := &Config{
		Backend:  "gpu",
		Fork:     "london",
		GasLimit: 0,
		Workers:  0,
		LogLevel: "loud",
	}

	err := config.Validate()
	require.Error(t, err)

	var merr *multierror.Error

	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)

	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.ErrorIs(t, err, chain.ErrUnknownFork)
	assert.ErrorIs(t, err, ErrInvalidWorkers)
	assert.ErrorIs(t, err, ErrZeroGasLimit)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestReadConfigFile(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"config.json": `{"backend": "precompile", "fork": "byzantium", "workers": 3}`,
		"config.yaml": "backend: precompile\nfork: byzantium\nworkers: 3\n",
		"config.hcl":  "backend = \"precompile\"\nfork = \"byzantium\"\nworkers = 3\n",
	}

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		config, err := ReadConfigFile(path)
		require.NoError(t, err, name)

		assert.Equal(t, "precompile", config.Backend, name)
		assert.Equal(t, chain.Byzantium, config.Fork, name)
		assert.Equal(t, 3, config.Workers, name)
		// not present in the file
		assert.Equal(t, DefaultGasLimit, config.GasLimit, name)
		assert.Equal(t, "INFO", config.LogLevel, name)
	}
}

func TestReadConfigFile_UnsupportedSuffix(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = 'library'"), 0600))

	_, err := ReadConfigFile(path)
	assert.ErrorContains(t, err, "neither hcl, json, yaml nor yml")

	_, err = ReadConfigFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
