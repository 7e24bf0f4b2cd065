package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/atelier/pkg/types"
)

func TestLoadConfigWritesDefaultFile(t *testing.T) {
	configDir := t.TempDir()
	flags.configDir = configDir
	t.Cleanup(func() { flags = rootFlags{} })

	v, err := loadConfig()
	require.NoError(t, err)

	path := filepath.Join(configDir, configFileExt)
	_, err = os.Stat(path)
	require.NoError(t, err, "default config.yaml must be created on first load")

	assert.Equal(t, types.BackendSQLite, v.GetString(cfgKeyBackend))
	assert.Equal(t, types.DefaultListenAddr, v.GetString(cfgKeyListenAddr))
}

func TestLoadConfigPreservesExistingFile(t *testing.T) {
	configDir := t.TempDir()
	flags.configDir = configDir
	t.Cleanup(func() { flags = rootFlags{} })

	custom := "backend: sqlite\nlisten_addr: 127.0.0.1:9999\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(custom), 0o644))

	v, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", v.GetString(cfgKeyListenAddr))
}

func TestStoreConfigFlagOverridesDataDir(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	flags = rootFlags{configDir: configDir, dataDir: dataDir}
	t.Cleanup(func() { flags = rootFlags{} })

	v, err := loadConfig()
	require.NoError(t, err)

	config, err := storeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, config.Backend)
	assert.Equal(t, dataDir, config.DataDir)
	require.NoError(t, config.Validate())
}
