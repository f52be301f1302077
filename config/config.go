// Package config holds the fixed pixel metrics the layout and display
// packages render against. Values match the defaults of the original
// engine's constants; a host embedding pinhole can override them from a
// YAML document without recompiling.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pinhole-web/pinhole/errors"
)

// Constants carries the fixed monospace layout metrics, all in integer
// pixels.
type Constants struct {
	WindowWidth   int `yaml:"window_width"`
	WindowHeight  int `yaml:"window_height"`
	WindowPadding int `yaml:"window_padding"`
	TitleBarHeight int `yaml:"title_bar_height"`
	ToolbarHeight int `yaml:"toolbar_height"`
	CharWidth     int `yaml:"char_width"`
	CharHeight    int `yaml:"char_height"`
}

// ContentAreaWidth returns WindowWidth minus the two side paddings.
func (c Constants) ContentAreaWidth() int {
	return c.WindowWidth - 2*c.WindowPadding
}

// ContentAreaHeight returns the vertical space left for content below
// the title bar and toolbar.
func (c Constants) ContentAreaHeight() int {
	return c.WindowHeight - c.TitleBarHeight - c.ToolbarHeight - 2*c.WindowPadding
}

// CharHeightWithPadding returns the line height used for wrapped text.
func (c Constants) CharHeightWithPadding() int {
	return c.CharHeight + 4
}

// Default returns the compiled-in metrics, matching the original
// engine's constants.rs.
func Default() Constants {
	return Constants{
		WindowWidth:    600,
		WindowHeight:   400,
		WindowPadding:  5,
		TitleBarHeight: 24,
		ToolbarHeight:  26,
		CharWidth:      8,
		CharHeight:     16,
	}
}

// LoadYAML reads a YAML document at path and overlays it on top of the
// compiled-in defaults; fields the document omits keep their default
// value. A missing or malformed file is reported as
// errors.UnexpectedInput.
func LoadYAML(path string) (Constants, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap("config.LoadYAML", errors.UnexpectedInput, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrap("config.LoadYAML", errors.UnexpectedInput, err)
	}
	return c, nil
}
