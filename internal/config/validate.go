package config

import (
	"errors"
	"fmt"

	"github.com/mgpai22/stylesub/internal/subtitle"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScript(); err != nil {
		return err
	}
	return c.validateStyles()
}

func (c *Config) validateScript() error {
	if c.Script.Title == "" {
		return errors.New("script.title must be set")
	}
	if c.Script.PlayResX <= 0 || c.Script.PlayResY <= 0 {
		return fmt.Errorf(
			"script.play_res_x and script.play_res_y must be positive, got %dx%d",
			c.Script.PlayResX,
			c.Script.PlayResY,
		)
	}
	return nil
}

func (c *Config) validateStyles() error {
	s := c.Styles
	if s.Count < 1 || s.Count > subtitle.MaxPoolSize {
		return fmt.Errorf("styles.count must be between 1 and %d, got %d", subtitle.MaxPoolSize, s.Count)
	}
	if s.Prefix == "" {
		return errors.New("styles.prefix must be set")
	}
	if len(s.Fonts) == 0 {
		return errors.New("styles.fonts must list at least one font")
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("styles.font_size must be positive, got %d", s.FontSize)
	}
	if s.Outline < 0 || s.Shadow < 0 {
		return errors.New("styles.outline and styles.shadow must not be negative")
	}
	if s.Alignment < 1 || s.Alignment > 9 {
		return fmt.Errorf("styles.alignment must be between 1 and 9, got %d", s.Alignment)
	}
	if s.PrimaryColour == "" || s.SecondaryColour == "" {
		return errors.New("styles.primary_colour and styles.secondary_colour must be set")
	}
	return nil
}
