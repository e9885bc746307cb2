package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// envPrefix namespaces environment overrides, e.g. CARGO_README_NO_TITLE.
	envPrefix = "CARGO_README"
	// configFileName is an optional settings file in the project root.
	configFileName = ".cargo-readme.toml"

	defaultPreviewWidth = 80
)

// Setting keys double as flag names.
const (
	keyInput            = "input"
	keyOutput           = "output"
	keyTemplate         = "template"
	keyNoTitle          = "no-title"
	keyAppendLicense    = "append-license"
	keyNoTemplate       = "no-template"
	keyNoIndentHeadings = "no-indent-headings"
	keyProjectDir       = "project-dir"
	keyPreview          = "preview"
	keyWidth            = "width"
	keyWatch            = "watch"
	keyVerbose          = "verbose"
)

type options struct {
	input            string
	output           string
	template         string
	noTitle          bool
	appendLicense    bool
	noTemplate       bool
	noIndentHeadings bool
	preview          bool
	width            int
	watch            bool
	verbose          bool
}

// config layers settings: changed flags, then CARGO_README_* variables, then
// .cargo-readme.toml, then flag defaults.
type config struct {
	*viper.Viper
}

func newConfig() *config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")
	return &config{Viper: v}
}

// loadFile merges the project's settings file when it exists.
func (c *config) loadFile(root string) error {
	path := filepath.Join(root, configFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	c.SetConfigFile(path)
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", configFileName, err)
	}
	return nil
}

func (c *config) options() options {
	width := c.GetInt(keyWidth)
	if width <= 0 {
		width = defaultPreviewWidth
	}
	return options{
		input:            c.GetString(keyInput),
		output:           c.GetString(keyOutput),
		template:         c.GetString(keyTemplate),
		noTitle:          c.GetBool(keyNoTitle),
		appendLicense:    c.GetBool(keyAppendLicense),
		noTemplate:       c.GetBool(keyNoTemplate),
		noIndentHeadings: c.GetBool(keyNoIndentHeadings),
		preview:          c.GetBool(keyPreview),
		width:            width,
		watch:            c.GetBool(keyWatch),
		verbose:          c.GetBool(keyVerbose),
	}
}
