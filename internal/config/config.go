package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath              = ".promptflags.yml"
	DefaultTool              = "vapor"
	DefaultManifest          = "manifest.yml"
	DefaultImageManifestPath = "/manifest.yml"
)

// Config says where the manifest comes from and which tool gets the flags.
type Config struct {
	Tool              string   `yaml:"tool"`
	Args              []string `yaml:"args"`
	VersionArgs       []string `yaml:"version_args"`
	Manifest          string   `yaml:"manifest"`
	Image             string   `yaml:"image"`
	ImageManifestPath string   `yaml:"image_manifest_path"`
}

func Default() *Config {
	return &Config{
		Tool:              DefaultTool,
		Args:              []string{"new"},
		VersionArgs:       []string{"--version"},
		Manifest:          DefaultManifest,
		ImageManifestPath: DefaultImageManifestPath,
	}
}

// Load reads .env (when present) and then the config file at path.
// A missing config file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, ".env")
}

func LoadWithEnvFile(path, envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	cfg := Default()
	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("open config: %w", err)
	default:
		defer f.Close()
		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	applyEnv(cfg, os.Getenv)
	expand(cfg)
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("PROMPTFLAGS_TOOL"); v != "" {
		cfg.Tool = v
	}
	if v := getenv("PROMPTFLAGS_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := getenv("PROMPTFLAGS_IMAGE"); v != "" {
		cfg.Image = v
	}
}

func expand(cfg *Config) {
	cfg.Tool = os.ExpandEnv(cfg.Tool)
	cfg.Manifest = os.ExpandEnv(cfg.Manifest)
	cfg.Image = os.ExpandEnv(cfg.Image)
	cfg.ImageManifestPath = os.ExpandEnv(cfg.ImageManifestPath)
	for i, arg := range cfg.Args {
		cfg.Args[i] = os.ExpandEnv(arg)
	}
}

// Marshal renders cfg as the YAML written by `promptflags init`.
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return out, nil
}
