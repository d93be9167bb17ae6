package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/xmldiffs/xmldiffs/canon"
	"github.com/xmldiffs/xmldiffs/encode"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='force colorized output'"`
	NoColor  bool `cli:"name=nocolor desc='disable colorized output'"`
	IgnoreNS bool `cli:"name=ignore-ns aliases=n desc='treat all namespace URIs as equal'"`

	canonCfg canon.Config

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(cc *cli.Context, path string) (any, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	var fileCfg canon.Config
	if err := yaml.UnmarshalWithOptions(d, &fileCfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", canon.ErrConfig, path, err)
	}
	cfg.canonCfg.PreserveWhitespaceIn = append(cfg.canonCfg.PreserveWhitespaceIn, fileCfg.PreserveWhitespaceIn...)
	cfg.canonCfg.Ignore = append(cfg.canonCfg.Ignore, fileCfg.Ignore...)
	cfg.canonCfg.IgnoreNamespaces = cfg.canonCfg.IgnoreNamespaces || fileCfg.IgnoreNamespaces
	return path, nil
}

func (cfg *MainConfig) preserveOpt(cc *cli.Context, name string) (any, error) {
	cfg.canonCfg.PreserveWhitespaceIn = append(cfg.canonCfg.PreserveWhitespaceIn, name)
	return name, nil
}

func (cfg *MainConfig) ignoreOpt(cc *cli.Context, rule string) (any, error) {
	cfg.canonCfg.Ignore = append(cfg.canonCfg.Ignore, rule)
	return rule, nil
}

// canonConfig merges flag and config-file options and validates them
// before any parsing or diffing starts.
func (cfg *MainConfig) canonConfig() (*canon.Config, error) {
	res := cfg.canonCfg
	res.IgnoreNamespaces = res.IgnoreNamespaces || cfg.IgnoreNS
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	if cfg.NoColor {
		return nil
	}
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type DiffConfig struct {
	*MainConfig
	JSON  bool `cli:"name=json aliases=j desc='emit the diff as JSON'"`
	Quiet bool `cli:"name=q aliases=quiet desc='no output, exit status only'"`

	Diff *cli.Command
}

type CanonConfig struct {
	*MainConfig

	Canon *cli.Command
}
