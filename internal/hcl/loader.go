package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/linkgridgo/internal/config"
	"github.com/vk/linkgridgo/internal/ctxlog"
	"github.com/vk/linkgridgo/internal/fsutil"
	"github.com/vk/linkgridgo/internal/schema"
)

// Loader loads link descriptions from .hcl files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Each path may be a single .hcl file or a
// directory searched recursively; all discovered files are merged into one
// model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No .hcl description files found.", "paths", paths)
	}

	parser := hclparse.NewParser()
	parsed := make([]*schema.DescriptionFile, 0, len(files))
	for _, file := range files {
		df, err := parseFile(parser, file)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, df)
	}

	// Locals from every file are evaluated first so any package block may
	// reference them, regardless of file order.
	evalCtx, err := buildEvalContext(parsed)
	if err != nil {
		return nil, err
	}

	model := &config.Model{Packages: make(map[string]*config.Package)}
	seenTargets := make(map[string]struct{})
	for _, df := range parsed {
		if err := l.translateFile(df, evalCtx, model, seenTargets); err != nil {
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

// collectFiles expands the given paths into a flat list of .hcl files.
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
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find description files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// parseFile parses and strictly decodes a single description file. Unknown
// blocks or attributes are decode errors; there is no silent ignoring.
func parseFile(parser *hclparse.Parser, filePath string) (*schema.DescriptionFile, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var df schema.DescriptionFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &df)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}
	return &df, nil
}

// buildEvalContext evaluates all locals blocks into a `local` object value.
func buildEvalContext(parsed []*schema.DescriptionFile) (*hcl.EvalContext, error) {
	locals := make(map[string]cty.Value)
	for _, df := range parsed {
		for _, block := range df.Locals {
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to read locals block: %w", diags)
			}
			for name, attr := range attrs {
				if _, ok := locals[name]; ok {
					return nil, fmt.Errorf("duplicate local: %s", name)
				}
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return nil, fmt.Errorf("local %s must be a literal value: %w", name, diags)
				}
				locals[name] = val
			}
		}
	}

	evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{}}
	if len(locals) > 0 {
		evalCtx.Variables["local"] = cty.ObjectVal(locals)
	}
	return evalCtx, nil
}
