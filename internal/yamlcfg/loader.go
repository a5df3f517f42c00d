// Package yamlcfg provides the YAML implementation of the config.Loader
// interface, for projects that keep their link descriptions in .yaml files
// instead of HCL. Decoding is strict: unknown fields are errors.
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vk/linkgridgo/internal/config"
	"github.com/vk/linkgridgo/internal/ctxlog"
	"github.com/vk/linkgridgo/internal/fsutil"
)

// descriptionFile mirrors the YAML document layout.
type descriptionFile struct {
	Targets  []string               `yaml:"targets"`
	Packages map[string]packageSpec `yaml:"packages"`
	Attach   []attachSpec           `yaml:"attach"`
}

type packageSpec struct {
	Handle      string   `yaml:"handle"`
	IncludeDirs []string `yaml:"include_dirs"`
	Libraries   []string `yaml:"libraries"`
	LibraryDirs []string `yaml:"library_dirs"`
	Definitions []string `yaml:"definitions"`
}

type attachSpec struct {
	Target         string   `yaml:"target"`
	Packages       []string `yaml:"packages"`
	Scope          string   `yaml:"scope"`
	SystemIncludes bool     `yaml:"system_includes"`
}

// Loader loads link descriptions from .yaml/.yml files.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Each path may be a single file or a
// directory searched recursively; all discovered files are merged into one
// model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No YAML description files found.", "paths", paths)
	}

	model := &config.Model{Packages: make(map[string]*config.Package)}
	seenTargets := make(map[string]struct{})
	for _, file := range files {
		if err := l.mergeFile(file, model, seenTargets); err != nil {
			return nil, err
		}
	}

	logger.Debug("Link description loaded.",
		"files", len(files),
		"targets", len(model.Targets),
		"packages", len(model.Packages),
		"attachments", len(model.Attachments))
	return model, nil
}

func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read description path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("failed to find description files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// mergeFile strictly decodes one YAML file and merges it into the model.
func (l *Loader) mergeFile(filePath string, model *config.Model, seenTargets map[string]struct{}) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read description file %s: %w", filePath, err)
	}

	var df descriptionFile
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&df); err != nil {
		return fmt.Errorf("failed to decode YAML file %s: %w", filePath, err)
	}

	for _, name := range df.Targets {
		if _, ok := seenTargets[name]; ok {
			return fmt.Errorf("duplicate target: %s", name)
		}
		seenTargets[name] = struct{}{}
		model.Targets = append(model.Targets, &config.Target{Name: name})
	}

	// Map iteration order is random; sort so merge errors are stable.
	names := make([]string, 0, len(df.Packages))
	for name := range df.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := model.Packages[name]; ok {
			return fmt.Errorf("duplicate package: %s", name)
		}
		spec := df.Packages[name]
		model.Packages[name] = &config.Package{
			Name:        name,
			Handle:      spec.Handle,
			IncludeDirs: spec.IncludeDirs,
			Libraries:   spec.Libraries,
			LibraryDirs: spec.LibraryDirs,
			Definitions: spec.Definitions,
		}
	}

	for _, a := range df.Attach {
		if a.Target == "" {
			return fmt.Errorf("attach entry without a target in %s", filePath)
		}
		model.Attachments = append(model.Attachments, &config.Attachment{
			Target:         a.Target,
			Packages:       a.Packages,
			Scope:          a.Scope,
			SystemIncludes: a.SystemIncludes,
		})
	}
	return nil
}
