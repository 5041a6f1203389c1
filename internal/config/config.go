package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// HistoryFile overrides shell history autodetection.
	HistoryFile string `json:"history_file,omitempty"`

	// Shell forces the history format: zsh, bash, fish, or histdb.
	// Empty means detect from $SHELL.
	Shell string `json:"shell,omitempty"`

	// MoodFile overrides where the mood signature is written and read.
	// Empty means <data dir>/mood.json.
	MoodFile string `json:"mood_file,omitempty"`

	// DefaultRange is the analysis window used when none is given,
	// e.g. "7d", "2w", or a plain day count.
	DefaultRange string `json:"default_range,omitempty"`

	// ChangelogPath is an optional markdown changelog consulted by the
	// patchnotes renderer.
	ChangelogPath string `json:"changelog_path,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are ignored.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultRange: "7d",
	}
}

// Load reads baseDir/config.json, layers it over the defaults, then
// applies environment overrides. A missing file is not an error; the
// baseDir parameter lets tests point at t.TempDir().
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	applyEnv(merged)
	return merged, nil
}

// loadFileRaw returns a zero-valued config when the file is absent.
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values win when
// non-zero; DisabledTools lists are concatenated and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{
		HistoryFile:   overlay.HistoryFile,
		Shell:         overlay.Shell,
		MoodFile:      overlay.MoodFile,
		DefaultRange:  overlay.DefaultRange,
		ChangelogPath: overlay.ChangelogPath,
	}
	if result.HistoryFile == "" {
		result.HistoryFile = base.HistoryFile
	}
	if result.Shell == "" {
		result.Shell = base.Shell
	}
	if result.MoodFile == "" {
		result.MoodFile = base.MoodFile
	}
	if result.DefaultRange == "" {
		result.DefaultRange = base.DefaultRange
	}
	if result.ChangelogPath == "" {
		result.ChangelogPath = base.ChangelogPath
	}

	seen := make(map[string]bool)
	for _, tool := range append(append([]string(nil), base.DisabledTools...), overlay.DisabledTools...) {
		if !seen[tool] {
			seen[tool] = true
			result.DisabledTools = append(result.DisabledTools, tool)
		}
	}
	return result
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TTYMOOD_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv("TTYMOOD_SHELL"); v != "" {
		cfg.Shell = v
	}
	if v := os.Getenv("TTYMOOD_MOOD_FILE"); v != "" {
		cfg.MoodFile = v
	}
}

// DataDir returns the directory holding the signature and config.
// TTYMOOD_DATA_DIR wins, then $XDG_DATA_HOME/absurdtty, then
// ~/.local/share/absurdtty.
func DataDir() (string, error) {
	if dir := os.Getenv("TTYMOOD_DATA_DIR"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "absurdtty"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "absurdtty"), nil
}

// ResolveMoodFile returns the signature path, honoring the MoodFile
// override.
func (c *Config) ResolveMoodFile() (string, error) {
	if c.MoodFile != "" {
		return c.MoodFile, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mood.json"), nil
}
