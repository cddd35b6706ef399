// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symdiag/symmetry"
)

const (
	defaultConfigPath = "symdiag.yaml"
	defaultEnvFile    = ".env"

	envLayout = "SYMDIAG_LAYOUT"
	envOutput = "SYMDIAG_OUTPUT"
	envDebug  = "SYMDIAG_DEBUG"
)

// Output formats accepted by --output.
const (
	outputText   = "text"
	outputPretty = "pretty"
	outputAuto   = "auto"
	outputYAML   = "yaml"
	outputJSON   = "json"
)

var errUnknownOutput = errors.New("symdiag: unknown output format")

// Config holds the CLI settings. Precedence, lowest first:
// defaults, config file, environment (.env then process), flags.
type Config struct {
	Layout string `yaml:"layout"`
	Output string `yaml:"output"`
	Debug  bool   `yaml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Layout: symmetry.DefaultLayout.String(),
		Output: outputText,
	}
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(string) (string, bool)

// envLookup returns a lookup that prefers the process environment and falls
// back to the variables defined in envFile. A missing envFile is not an error.
func envLookup(envFile string) (lookupFunc, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]

		return v, ok
	}, nil
}

// loadConfig reads the YAML file at path over the defaults and applies the
// environment overrides from lookup. A missing file is ignored unless
// required is set.
func loadConfig(path string, required bool, lookup lookupFunc) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if lookup != nil {
		if v, ok := lookup(envLayout); ok && v != "" {
			cfg.Layout = v
		}
		if v, ok := lookup(envOutput); ok && v != "" {
			cfg.Output = v
		}
		if v, ok := lookup(envDebug); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s=%q: %w", envDebug, v, err)
			}
			cfg.Debug = b
		}
	}

	return cfg, nil
}

// layout parses cfg.Layout.
func (c Config) layout() (symmetry.Layout, error) {
	return symmetry.ParseLayout(c.Layout)
}

// format resolves cfg.Output; "auto" picks pretty on a terminal, text otherwise.
func (c Config) format(terminal bool) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(c.Output)); f {
	case outputText, outputPretty, outputYAML, outputJSON:
		return f, nil
	case outputAuto:
		if terminal {
			return outputPretty, nil
		}
		return outputText, nil
	default:
		return "", fmt.Errorf("%q: %w", c.Output, errUnknownOutput)
	}
}
