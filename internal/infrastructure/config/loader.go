package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration using the fs.FS interface. Tuning
// tables are JSON, level files are YAML.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadManifest loads levels/manifest.yaml, the ordered level list.
func (l *Loader) LoadManifest() (*ManifestConfig, error) {
	data, err := fs.ReadFile(l.fsys, "levels/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read level manifest: %w", err)
	}

	var cfg ManifestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level manifest: %w", err)
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("level manifest names no levels")
	}

	return &cfg, nil
}

// LoadLevel loads a single level YAML file by name.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}
