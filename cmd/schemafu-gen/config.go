package main

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	schemafu "github.com/ccbrown/schema-fu"
)

// hclConfigFile is the structure of the file given via --config. Everything in it is optional.
type hclConfigFile struct {
	NonNullDefaults *hclNonNullDefaults `hcl:"non_null_defaults,block"`
	AbstractTypes   *hclAbstractTypes   `hcl:"abstract_types,block"`
	SourceTypes     map[string]string   `hcl:"source_types,optional"`
}

type hclNonNullDefaults struct {
	Input  *bool `hcl:"input,optional"`
	Output *bool `hcl:"output,optional"`
}

type hclAbstractTypes struct {
	IsTypeOf      *bool `hcl:"is_type_of,optional"`
	ResolveType   *bool `hcl:"resolve_type,optional"`
	Typename      *bool `hcl:"typename,optional"`
	RuntimeChecks *bool `hcl:"runtime_checks,optional"`
}

func loadConfigFile(path string) (*hclConfigFile, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %v", path)
	}

	var ret hclConfigFile
	if diags := gohcl.DecodeBody(f.Body, nil, &ret); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode %v", path)
	}
	return &ret, nil
}

// apply overrides the parts of cfg that the file sets.
func (f *hclConfigFile) apply(cfg *schemafu.Config) {
	if d := f.NonNullDefaults; d != nil {
		if d.Input != nil {
			cfg.NonNullDefaults.Input = *d.Input
		}
		if d.Output != nil {
			cfg.NonNullDefaults.Output = *d.Output
		}
	}

	if a := f.AbstractTypes; a != nil {
		features := schemafu.Features{}
		if cfg.Features != nil {
			features = *cfg.Features
		}
		strategies := schemafu.AbstractTypeStrategies{}
		if features.AbstractTypeStrategies != nil {
			strategies = *features.AbstractTypeStrategies
		}
		if a.IsTypeOf != nil {
			strategies.IsTypeOf = *a.IsTypeOf
		}
		if a.ResolveType != nil {
			strategies.ResolveType = *a.ResolveType
		}
		if a.Typename != nil {
			strategies.Typename = *a.Typename
		}
		features.AbstractTypeStrategies = &strategies
		if a.RuntimeChecks != nil {
			features.AbstractTypeRuntimeChecks = schemafu.Bool(*a.RuntimeChecks)
		}
		cfg.Features = &features
	}
}
