// Config loading for the atelier CLI.
// Implements: prd010-configuration-directories (R1.4, R1.5, R8).
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/atelier/internal/paths"
	"github.com/mesh-intelligence/atelier/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyListenAddr = "listen_addr"
)

// configHeader is prepended to the generated config.yaml.
const configHeader = "# Atelier configuration. data_dir defaults to ./" + paths.DefaultDataDirName + " when unset.\n"

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig() (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// storeConfig builds the Store config from viper values and global flags.
func storeConfig(v *viper.Viper) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend:    v.GetString(cfgKeyBackend),
		DataDir:    dataDir,
		ListenAddr: v.GetString(cfgKeyListenAddr),
	}, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	defaults := types.Config{
		Backend:    types.BackendSQLite,
		ListenAddr: types.DefaultListenAddr,
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
