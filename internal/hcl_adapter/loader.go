package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/orbitmap/internal/config"
	"github.com/specialistvlad/orbitmap/internal/ctxlog"
	"github.com/specialistvlad/orbitmap/internal/orbit"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and decodes a single HCL file.
func (l *Loader) Load(ctx context.Context, path string, env map[string]string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if ext := filepath.Ext(path); ext != ".hcl" {
		return nil, fmt.Errorf("config file %s is not an .hcl file", path)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, newEvalContext(env), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	model := translate(&root)
	logger.Debug("HCL loading complete.", "input", model.InputPath, "root", model.Root, "source", model.Source, "target", model.Target)
	return model, nil
}

// newEvalContext exposes the environment as the `env` object.
func newEvalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}

	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}

func translate(root *fileRoot) *config.Model {
	model := &config.Model{
		InputPath: root.Input,
		LogLevel:  strings.ToLower(root.LogLevel),
		LogFormat: strings.ToLower(root.LogFormat),
	}
	if root.Labels != nil {
		model.Root = orbit.Label(root.Labels.Root)
		model.Source = orbit.Label(root.Labels.Source)
		model.Target = orbit.Label(root.Labels.Target)
	}
	return model
}
