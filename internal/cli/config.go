// Config loading for the recipebook CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/recipebook/internal/paths"
	"github.com/mesh-intelligence/recipebook/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Keys read from config.yaml.
	cfgKeyBackend     = "backend"
	cfgKeyDataDir     = "data_dir"
	cfgKeyStorageKey  = "storage_key"
	cfgKeyIDSource    = "id_source"
	cfgKeyPreserveIDs = "preserve_ids_on_edit"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Recipebook configuration

# Storage backend: file, sqlite or memory
backend: file

# Data directory (optional; overridable by --data-dir)
# data_dir:

# Slot holding the recipe list
storage_key: recipe-storage

# Recipe id source: clock or uuid
id_source: clock

# Keep a recipe's id when it is edited
preserve_ids_on_edit: false
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendFile)
	v.SetDefault(cfgKeyStorageKey, types.DefaultStorageKey)
	v.SetDefault(cfgKeyIDSource, types.IDSourceClock)
	v.SetDefault(cfgKeyPreserveIDs, false)
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

// configFromViper builds the effective types.Config. Flags win over
// config.yaml; the data directory follows paths.ResolveDataDir.
func configFromViper(v *viper.Viper, flags rootFlags) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	cfg := types.Config{
		Backend:           v.GetString(cfgKeyBackend),
		DataDir:           dataDir,
		StorageKey:        v.GetString(cfgKeyStorageKey),
		IDSource:          v.GetString(cfgKeyIDSource),
		PreserveIDsOnEdit: v.GetBool(cfgKeyPreserveIDs),
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, userErrorf("config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
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

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), a.config)
			}
			out, err := yaml.Marshal(a.config)
			if err != nil {
				return sysError(fmt.Errorf("marshal config: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", filepath.Join(a.configDir, configFileExt), out)
			return nil
		},
	}
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
