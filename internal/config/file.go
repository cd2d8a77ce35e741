package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerSection configures the local snapshot server.
type ServerSection struct {
	// Pointers distinguish an unset value from an explicit zero or false.
	Enabled *bool `yaml:"enabled"`
	Port    *int  `yaml:"port"`
}

// File is the optional YAML configuration loaded with the -config flag.
// Values found here seed the Fyne preferences at startup.
type File struct {
	Radius   *float64      `yaml:"radius"`
	CenterX  float64       `yaml:"center_x"`
	CenterY  float64       `yaml:"center_y"`
	Language string        `yaml:"language"`
	LogLevel string        `yaml:"log_level"`
	Server   ServerSection `yaml:"server"`
}

// LoadFile reads a YAML configuration file, applies defaults and environment
// overrides, then validates the result.
func LoadFile(path string) (*File, error) {
	// #nosec G304 -- path is supplied by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigRead, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigParse, err)
	}

	applyDefaults(&f)

	if err := applyEnvOverrides(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigEnv, err)
	}

	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrConfigInvalid, err)
	}

	return &f, nil
}

// PortString returns the server port in the form stored in preferences.
func (f *File) PortString() string {
	return strconv.Itoa(*f.Server.Port)
}

// applyDefaults sets default values for unset fields.
func applyDefaults(f *File) {
	if f.Radius == nil {
		radius := DefaultRadius
		f.Radius = &radius
	}
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	if f.LogLevel == "" {
		f.LogLevel = DefaultLogLevel
	}
	if f.Server.Enabled == nil {
		enabled := DefaultServerEnabled
		f.Server.Enabled = &enabled
	}
	if f.Server.Port == nil {
		// DefaultPort is a compile-time constant, Atoi cannot fail.
		port, _ := strconv.Atoi(DefaultPort)
		f.Server.Port = &port
	}
}

// applyEnvOverrides lets the environment win over the file.
func applyEnvOverrides(f *File) error {
	if val := os.Getenv(EnvRadius); val != "" {
		r, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: must be a number, got %q", EnvRadius, val)
		}
		f.Radius = &r
	}

	if val := os.Getenv(EnvPort); val != "" {
		p, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: must be an integer, got %q", EnvPort, val)
		}
		f.Server.Port = &p
	}

	return nil
}

func validate(f *File) error {
	if err := ValidateRadius(*f.Radius); err != nil {
		return err
	}
	if *f.Server.Port < MinPort || *f.Server.Port > MaxPort {
		return errors.New(ErrPortRange)
	}
	if !slices.Contains(SupportedLanguages, f.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, f.Language)
	}
	return nil
}

// ValidateRadius reports whether r is a usable face radius.
func ValidateRadius(r float64) error {
	// Written as a negation so that NaN is rejected too.
	if !(r >= MinRadius && r <= MaxRadius) {
		return errors.New(ErrRadiusRange)
	}
	return nil
}
