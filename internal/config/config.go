package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the project config looked up in the workspace root.
const FileName = ".solve.json"

const EnvPrefix = "SOLVE"

const (
	DefaultTemplatesDir = "templates"
	DefaultSolutionsDir = "src/solutions"
	DefaultIndexFile    = "src/solutions.rs"
	DefaultExtension    = ".rs"
	DefaultTestTool     = "cargo"
)

var DefaultTestArgs = []string{"test"}

type ProjectConfig struct {
	TemplatesDir string   `json:"templates_dir" mapstructure:"templates_dir" yaml:"templates_dir"`
	SolutionsDir string   `json:"solutions_dir" mapstructure:"solutions_dir" yaml:"solutions_dir"`
	IndexFile    string   `json:"index_file" mapstructure:"index_file" yaml:"index_file"`
	Extension    string   `json:"extension" mapstructure:"extension" yaml:"extension"`
	TestTool     string   `json:"test_tool" mapstructure:"test_tool" yaml:"test_tool"`
	TestArgs     []string `json:"test_args" mapstructure:"test_args" yaml:"test_args"`
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetDefault("templates_dir", DefaultTemplatesDir)
	v.SetDefault("solutions_dir", DefaultSolutionsDir)
	v.SetDefault("index_file", DefaultIndexFile)
	v.SetDefault("extension", DefaultExtension)
	v.SetDefault("test_tool", DefaultTestTool)
	v.SetDefault("test_args", DefaultTestArgs)

	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadProjectConfig reads .solve.json from dir, falling back to defaults
// when it is absent. SOLVE_* environment variables override both.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	v := newViper(dir)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read project config: %w", err)
	}

	var cfg ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project config: %w", err)
	}
	return &cfg, nil
}

// SaveProjectConfig writes cfg to .solve.json in dir, replacing any
// existing file.
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("templates_dir", cfg.TemplatesDir)
	v.Set("solutions_dir", cfg.SolutionsDir)
	v.Set("index_file", cfg.IndexFile)
	v.Set("extension", cfg.Extension)
	v.Set("test_tool", cfg.TestTool)
	v.Set("test_args", cfg.TestArgs)

	path := filepath.Join(dir, FileName)
	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if !errors.As(err, &exists) {
			return fmt.Errorf("failed to write project config: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to write project config: %w", err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	// SetConfigFile bypasses the search path, so a missing file surfaces
	// as a plain fs error.
	return errors.Is(err, fs.ErrNotExist)
}

// Resolve returns p relative to root unless it is already absolute.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
