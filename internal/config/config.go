// Package config loads the per-environment settings of a report run.
//
// A config file holds named profiles. The profile is chosen once per run
// and falls back to DefaultProfile when the requested one does not exist.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/younsl/amireport/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProfile is used when the requested profile is empty or unknown
	DefaultProfile = "prod"

	// DefaultSubject is the email subject when a profile sets none
	DefaultSubject = "AWS - AMI Image Details"

	// DefaultRegionTimeout bounds each region's collection
	DefaultRegionTimeout = 2 * time.Minute
)

var (
	// ErrProfileNotFound is returned when neither the requested nor the default profile exists
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoProfiles is returned for a config file without profiles
	ErrNoProfiles = errors.New("config file defines no profiles")
)

// Profile is one environment's settings as written in the config file
type Profile struct {
	FromAddress            string   `json:"from_address" yaml:"from_address" toml:"from_address"`
	ToAddress              string   `json:"to_address" yaml:"to_address" toml:"to_address"`
	InstanceFilterTagKey   string   `json:"instance_filter_tag_key" yaml:"instance_filter_tag_key" toml:"instance_filter_tag_key"`
	InstanceFilterTagValue string   `json:"instance_filter_tag_value" yaml:"instance_filter_tag_value" toml:"instance_filter_tag_value"`
	DefaultRegion          string   `json:"default_region" yaml:"default_region" toml:"default_region"`
	Regions                []string `json:"regions" yaml:"regions" toml:"regions"`
	Subject                string   `json:"subject" yaml:"subject" toml:"subject"`
	RegionTimeout          string   `json:"region_timeout" yaml:"region_timeout" toml:"region_timeout"`
	AWSProfile             string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
}

// File is the on-disk layout of a config file
type File struct {
	Profiles map[string]Profile `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// Config is the resolved configuration of one run
type Config struct {
	Profile       string
	FromAddress   string
	ToAddress     string
	Filter        models.TagFilter
	DefaultRegion string
	Regions       []string
	Subject       string
	RegionTimeout time.Duration
	AWSProfile    string
}

// Load reads path and resolves the named profile
func Load(path, profile string) (Config, error) {
	file, err := ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return file.Resolve(profile)
}

// ReadFile parses a TOML, YAML or JSON config file chosen by extension
func ReadFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading config file: %w", err)
	}

	return Parse(data, strings.ToLower(filepath.Ext(path)))
}

// Parse decodes config data in the format named by ext (".yaml", ".yml", ".toml" or ".json")
func Parse(data []byte, ext string) (File, error) {
	var file File

	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return File{}, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return File{}, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return File{}, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return File{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if len(file.Profiles) == 0 {
		return File{}, ErrNoProfiles
	}
	return file, nil
}

// Resolve selects the named profile, falling back to DefaultProfile,
// applies defaults and validates the result.
func (f File) Resolve(name string) (Config, error) {
	selected := name
	p, ok := f.Profiles[name]
	if !ok {
		selected = DefaultProfile
		p, ok = f.Profiles[DefaultProfile]
	}
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (no %q fallback)", ErrProfileNotFound, name, DefaultProfile)
	}

	cfg := Config{
		Profile:     selected,
		FromAddress: strings.TrimSpace(p.FromAddress),
		ToAddress:   strings.TrimSpace(p.ToAddress),
		Filter: models.TagFilter{
			Key:   p.InstanceFilterTagKey,
			Value: p.InstanceFilterTagValue,
		},
		DefaultRegion: p.DefaultRegion,
		Regions:       p.Regions,
		Subject:       p.Subject,
		AWSProfile:    p.AWSProfile,
		RegionTimeout: DefaultRegionTimeout,
	}

	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}

	if p.RegionTimeout != "" {
		timeout, err := time.ParseDuration(p.RegionTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid region_timeout in profile %s: %w", selected, err)
		}
		cfg.RegionTimeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("profile %s: %w", selected, err)
	}
	return cfg, nil
}

// Validate checks the fields every run needs
func (c Config) Validate() error {
	if c.FromAddress == "" {
		return errors.New("from_address must be specified")
	}
	if c.ToAddress == "" {
		return errors.New("to_address must be specified")
	}
	if c.Filter.Key == "" && c.Filter.Value != "" {
		return errors.New("instance_filter_tag_value requires instance_filter_tag_key")
	}
	if c.RegionTimeout <= 0 {
		return errors.New("region_timeout must be positive")
	}
	return nil
}
