// This file translates decoded HCL schema structs into the format-agnostic
// configuration model, evaluating package metadata expressions along the
// way.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/linkgridgo/internal/config"
	"github.com/vk/linkgridgo/internal/schema"
)

// translateFile merges one decoded description file into the model,
// rejecting duplicate target and package names across files.
func (l *Loader) translateFile(df *schema.DescriptionFile, evalCtx *hcl.EvalContext, model *config.Model, seenTargets map[string]struct{}) error {
	for _, t := range df.Targets {
		if _, ok := seenTargets[t.Name]; ok {
			return fmt.Errorf("duplicate target: %s", t.Name)
		}
		seenTargets[t.Name] = struct{}{}
		model.Targets = append(model.Targets, &config.Target{Name: t.Name})
	}

	for _, p := range df.Packages {
		if _, ok := model.Packages[p.Name]; ok {
			return fmt.Errorf("duplicate package: %s", p.Name)
		}
		pkg, err := l.translatePackage(p, evalCtx)
		if err != nil {
			return err
		}
		model.Packages[p.Name] = pkg
	}

	for _, a := range df.Attachments {
		model.Attachments = append(model.Attachments, &config.Attachment{
			Target:         a.Target,
			Packages:       a.Packages,
			Scope:          a.Scope,
			SystemIncludes: a.SystemIncludes,
		})
	}
	return nil
}

// translatePackage evaluates a package block's metadata expressions into the
// model's plain string lists.
func (l *Loader) translatePackage(p *schema.Package, evalCtx *hcl.EvalContext) (*config.Package, error) {
	pkg := &config.Package{Name: p.Name, Handle: p.Handle}

	for _, field := range []struct {
		attr string
		expr hcl.Expression
		dst  *[]string
	}{
		{"include_dirs", p.IncludeDirs, &pkg.IncludeDirs},
		{"libraries", p.Libraries, &pkg.Libraries},
		{"library_dirs", p.LibraryDirs, &pkg.LibraryDirs},
		{"definitions", p.Definitions, &pkg.Definitions},
	} {
		values, err := evalStringList(field.expr, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("package %s: attribute %s: %w", p.Name, field.attr, err)
		}
		*field.dst = values
	}
	return pkg, nil
}

// evalStringList evaluates an optional expression into a list of strings. A
// nil or null expression yields nil.
func evalStringList(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("expected a list of strings: %w", err)
	}

	var out []string
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("failed to read list of strings: %w", err)
	}
	return out, nil
}
