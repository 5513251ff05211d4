package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeFile is the file name searched for in the user and local config dirs.
const ThemeFile = "theme.yaml"

// Load loads the snake theme.
// Search order: customPath -> ~/.snake/theme.yaml -> ./configs/theme.yaml -> embedded default.
// Files are layered over the defaults, so a theme may set only the fields it
// changes. Only an explicit customPath turns read errors into failures.
func Load(customPath string) (Theme, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Theme{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		th, err := Parse(data)
		if err != nil {
			return Theme{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return th, nil
	}

	if userPath := userConfigPath(ThemeFile); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if th, err := Parse(data); err == nil {
				return th, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ThemeFile)); err == nil {
		if th, err := Parse(data); err == nil {
			return th, nil
		}
	}

	th, err := Parse(defaultThemeYAML)
	if err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed is broken
	}
	return th, nil
}

// Parse decodes a theme layered over DefaultTheme and validates it.
func Parse(data []byte) (Theme, error) {
	th := DefaultTheme()
	if err := yaml.Unmarshal(data, &th); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	if err := th.Validate(); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// Marshal encodes a theme as YAML.
func Marshal(th Theme) ([]byte, error) {
	data, err := yaml.Marshal(th)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode theme: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
