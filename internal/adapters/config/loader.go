// Package config provides the project configuration loader for i18nhtml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/i18nhtml/internal/core/domain"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the project file in cwd or one of its parents and returns the validated project.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := findProjectFile(cwd)
	if err != nil {
		return nil, err
	}

	var file ProjectFile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, assuming %q", file.Version, configPath, SchemaVersion))
	}

	project := &domain.Project{
		Root:        resolveRoot(configPath, file.Root),
		Languages:   file.Languages,
		Parallelism: file.Parallelism,
	}

	if err := validateLanguages(file.Languages); err != nil {
		return nil, err
	}

	switch {
	case file.Parallelism < 0:
		err := errors.Join(domain.ErrConfiguration, zerr.New("parallelism must not be negative"))
		return nil, zerr.With(err, "parallelism", file.Parallelism)
	case file.Parallelism == 0:
		project.Parallelism = domain.DefaultParallelism
	}

	project.CacheDir = resolveCacheDir(project.Root, file.CacheDir)

	nodes, err := l.resolveNodes(project.Root, file.Nodes, file.Languages)
	if err != nil {
		return nil, err
	}
	project.Nodes = nodes

	return project, nil
}

func findProjectFile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to discover project"), "cwd", cwd)
}

func validateLanguages(languages []string) error {
	if len(languages) == 0 {
		return errors.Join(domain.ErrConfiguration, domain.ErrNoLocale)
	}
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		if _, err := domain.ResolveLocale(lang, nil); err != nil {
			return errors.Join(domain.ErrConfiguration, err)
		}
		if _, dup := seen[lang]; dup {
			err := errors.Join(domain.ErrConfiguration, zerr.New("duplicate project language"))
			return zerr.With(err, "locale", lang)
		}
		seen[lang] = struct{}{}
	}
	return nil
}

// resolveNodes expands the node patterns into node directories relative to root.
// Options of a directory matched by several patterns are appended in pattern order.
func (l *Loader) resolveNodes(
	root string,
	patterns map[string][]domain.TechOptions,
	languages []string,
) ([]domain.NodeConfig, error) {
	keys := make([]string, 0, len(patterns))
	for k := range patterns {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	techs := make(map[string][]domain.TechOptions)
	for _, pattern := range keys {
		options := patterns[pattern]
		for i, opts := range options {
			if opts.Lang == "" {
				continue
			}
			if _, err := domain.ResolveLocale(opts.Lang, languages); err != nil {
				err = zerr.With(errors.Join(domain.ErrConfiguration, err), "node", pattern)
				return nil, zerr.With(err, "index", i)
			}
		}

		paths, err := l.expandNodePattern(root, pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			techs[p] = append(techs[p], options...)
		}
	}

	nodes := make([]domain.NodeConfig, 0, len(techs))
	for p, opts := range techs {
		nodes = append(nodes, domain.NodeConfig{Path: p, Techs: opts})
	}
	slices.SortFunc(nodes, func(a, b domain.NodeConfig) int {
		return strings.Compare(a.Path, b.Path)
	})
	return nodes, nil
}

// expandNodePattern returns the slash-separated node paths a pattern denotes.
// A pattern without glob characters names a node even if its directory does not exist yet;
// a glob pattern only matches existing directories.
func (l *Loader) expandNodePattern(root, pattern string) ([]string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(pattern))
	if pattern == "" || !filepath.IsLocal(cleaned) || cleaned == "." {
		return nil, zerr.With(errors.Join(domain.ErrConfiguration, domain.ErrInvalidNodePath), "node", pattern)
	}

	if !strings.ContainsAny(cleaned, "*?[") {
		return []string{filepath.ToSlash(cleaned)}, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, cleaned))
	if err != nil {
		return nil, zerr.Wrap(err, "glob pattern failed: "+pattern)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		// Glob returns files too
		info, statErr := os.Stat(match)
		if statErr != nil {
			return nil, zerr.With(zerr.Wrap(statErr, domain.ErrPathStatFailed.Error()), "path", match)
		}
		if !info.IsDir() {
			continue
		}
		rel, relErr := filepath.Rel(root, match)
		if relErr != nil {
			return nil, zerr.Wrap(relErr, "failed to relativize node path")
		}
		paths = append(paths, filepath.ToSlash(rel))
	}

	if len(paths) == 0 {
		l.Logger.Warn(fmt.Sprintf("node pattern %q matches no directories", pattern))
	}
	return paths, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func resolveCacheDir(root, configured string) string {
	if configured == "" {
		return filepath.Join(root, domain.DefaultCachePath())
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(root, configured)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findProjectFile
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
