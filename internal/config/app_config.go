// Package config loads application configuration and builds selection settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/rollinbe/CodeScribe-CLI/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Scan ScanCommandConfiguration `mapstructure:"scan"`
}

// ScanCommandConfiguration defines configurable defaults for the scan command.
type ScanCommandConfiguration struct {
	Output            string             `mapstructure:"output"`
	TextOnly          *bool              `mapstructure:"text_only"`
	ExportText        *bool              `mapstructure:"export_text"`
	Banner            *bool              `mapstructure:"banner"`
	Minimal           *bool              `mapstructure:"minimal"`
	UseGitignore      *bool              `mapstructure:"use_gitignore"`
	ExcludeSpecFiles  *bool              `mapstructure:"exclude_spec"`
	MaxFileSizeKB     *int               `mapstructure:"max_size_kb"`
	IncludeExtensions []string           `mapstructure:"include_ext"`
	ExcludeExtensions []string           `mapstructure:"exclude_ext"`
	Tokens            TokenConfiguration `mapstructure:"tokens"`
	Clipboard         *bool              `mapstructure:"clipboard"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	merged.Scan.IncludeExtensions = utils.DeduplicatePatterns(merged.Scan.IncludeExtensions)
	merged.Scan.ExcludeExtensions = utils.DeduplicatePatterns(merged.Scan.ExcludeExtensions)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory == "" {
			absolutePath, absoluteError := filepath.Abs(explicitPath)
			if absoluteError != nil {
				return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, absoluteError)
			}
			return absolutePath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	if workingDirectory == "" {
		return "", nil
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName), nil
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	if path == "" {
		return ApplicationConfiguration{}, nil
	}
	pathInformation, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if pathInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	result.Scan = result.Scan.merge(override.Scan)
	return result
}

func (configuration ScanCommandConfiguration) merge(override ScanCommandConfiguration) ScanCommandConfiguration {
	result := configuration
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.TextOnly != nil {
		result.TextOnly = cloneBool(override.TextOnly)
	}
	if override.ExportText != nil {
		result.ExportText = cloneBool(override.ExportText)
	}
	if override.Banner != nil {
		result.Banner = cloneBool(override.Banner)
	}
	if override.Minimal != nil {
		result.Minimal = cloneBool(override.Minimal)
	}
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	if override.ExcludeSpecFiles != nil {
		result.ExcludeSpecFiles = cloneBool(override.ExcludeSpecFiles)
	}
	if override.MaxFileSizeKB != nil {
		result.MaxFileSizeKB = cloneInt(override.MaxFileSizeKB)
	}
	if len(override.IncludeExtensions) > 0 {
		result.IncludeExtensions = append([]string{}, utils.DeduplicatePatterns(override.IncludeExtensions)...)
	}
	if len(override.ExcludeExtensions) > 0 {
		result.ExcludeExtensions = append([]string{}, utils.DeduplicatePatterns(override.ExcludeExtensions)...)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
