package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/stylesub/internal/subtitle"
)

//go:embed sample_config.toml
var sampleConfig string

// Script contains the [Script Info] header values.
type Script struct {
	Title    string `toml:"title"`
	PlayResX int    `toml:"play_res_x"`
	PlayResY int    `toml:"play_res_y"`
}

// Styles describes the generated style pool.
type Styles struct {
	Count           int      `toml:"count"`
	Prefix          string   `toml:"prefix"`
	Fonts           []string `toml:"fonts"`
	FontSize        int      `toml:"font_size"`
	PrimaryColour   string   `toml:"primary_colour"`
	SecondaryColour string   `toml:"secondary_colour"`
	Outline         int      `toml:"outline"`
	Shadow          int      `toml:"shadow"`
	Bold            bool     `toml:"bold"`
	Italic          bool     `toml:"italic"`
	Underline       bool     `toml:"underline"`
	Alignment       int      `toml:"alignment"`
}

// Output contains conversion output preferences.
type Output struct {
	Seed            uint64 `toml:"seed"`
	CopyToClipboard bool   `toml:"copy_to_clipboard"`
}

// Config is the complete stylesub configuration.
type Config struct {
	Script Script `toml:"script"`
	Styles Styles `toml:"styles"`
	Output Output `toml:"output"`
}

// Default returns the built-in configuration, matching the default pool
// and script header of the subtitle package.
func Default() Config {
	pool := subtitle.DefaultPoolOptions()
	info := subtitle.DefaultScriptInfo()
	return Config{
		Script: Script{
			Title:    info.Title,
			PlayResX: info.PlayResX,
			PlayResY: info.PlayResY,
		},
		Styles: Styles{
			Count:           pool.Count,
			Prefix:          pool.Prefix,
			Fonts:           append([]string(nil), pool.Fonts...),
			FontSize:        pool.FontSize,
			PrimaryColour:   pool.PrimaryColour,
			SecondaryColour: pool.SecondaryColour,
			Outline:         pool.Outline,
			Shadow:          pool.Shadow,
			Bold:            pool.Bold,
			Italic:          pool.Italic,
			Underline:       pool.Underline,
			Alignment:       pool.Alignment,
		},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/stylesub/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// yields the defaults; the returned bool reports whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, "", false, err
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("stylesub.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) applyEnv() error {
	value, ok := os.LookupEnv("STYLESUB_SEED")
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	seed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fmt.Errorf("STYLESUB_SEED must be a non-negative integer: %w", err)
	}
	c.Output.Seed = seed
	return nil
}

func (c *Config) normalize() {
	c.Script.Title = strings.TrimSpace(c.Script.Title)
	c.Styles.Prefix = strings.TrimSpace(c.Styles.Prefix)

	fonts := c.Styles.Fonts[:0]
	for _, font := range c.Styles.Fonts {
		if font = strings.TrimSpace(font); font != "" {
			fonts = append(fonts, font)
		}
	}
	c.Styles.Fonts = fonts
}

// PoolOptions converts the style section into generator options.
func (c *Config) PoolOptions() subtitle.PoolOptions {
	return subtitle.PoolOptions{
		Count:           c.Styles.Count,
		Prefix:          c.Styles.Prefix,
		Fonts:           append([]string(nil), c.Styles.Fonts...),
		FontSize:        c.Styles.FontSize,
		PrimaryColour:   c.Styles.PrimaryColour,
		SecondaryColour: c.Styles.SecondaryColour,
		Outline:         c.Styles.Outline,
		Shadow:          c.Styles.Shadow,
		Bold:            c.Styles.Bold,
		Italic:          c.Styles.Italic,
		Underline:       c.Styles.Underline,
		Alignment:       c.Styles.Alignment,
	}
}

// ScriptInfo converts the script section into header values.
func (c *Config) ScriptInfo() subtitle.ScriptInfo {
	info := subtitle.DefaultScriptInfo()
	info.Title = c.Script.Title
	info.PlayResX = c.Script.PlayResX
	info.PlayResY = c.Script.PlayResY
	return info
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes the sample configuration to path, creating parent
// directories. An existing file is never overwritten.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
