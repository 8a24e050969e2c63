package config

import "go.trai.ch/i18nhtml/internal/core/domain"

// SchemaVersion is the project file version understood by the loader.
const SchemaVersion = "1"

// ProjectFile represents the structure of the i18nhtml.yaml configuration file.
type ProjectFile struct {
	Version     string                          `yaml:"version"`
	Root        string                          `yaml:"root"`
	Languages   []string                        `yaml:"languages"`
	CacheDir    string                          `yaml:"cacheDir"`
	Parallelism int                             `yaml:"parallelism"`
	Nodes       map[string][]domain.TechOptions `yaml:"nodes"`
}
