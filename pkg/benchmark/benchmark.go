// Package benchmark provides named job-shop benchmark instances with best
// known optimum values, backed by a schema-validated JSON index.
package benchmark

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yesoreyeram/thittam/pkg/problem"
	"github.com/yesoreyeram/thittam/pkg/types"
)

//go:embed instances.json instances/*.txt
var embedded embed.FS

// Bounds is a [lower, upper] interval on the optimum makespan.
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Instance is one entry of the benchmark index.
type Instance struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Optimum *float64 `json:"optimum,omitempty"`
	Bounds  *Bounds  `json:"bounds,omitempty"`
}

// optimum converts the index fields into the domain value.
func (in Instance) optimum() types.Optimum {
	if in.Optimum != nil {
		return types.Optimum{Exact: in.Optimum}
	}
	if in.Bounds != nil {
		return types.Optimum{Lower: &in.Bounds.Lower, Upper: &in.Bounds.Upper}
	}
	return types.Optimum{}
}

// Registry resolves benchmark names to problems.
type Registry struct {
	fsys      fs.FS
	instances []Instance
	byName    map[string]int
}

// NewRegistry builds a registry from an index file and the filesystem its
// paths are relative to. The index is schema-validated before use.
func NewRegistry(fsys fs.FS, indexPath string) (*Registry, error) {
	data, err := fs.ReadFile(fsys, indexPath)
	if err != nil {
		return nil, fmt.Errorf("benchmark index %s: %w", indexPath, err)
	}
	if err := validateIndex(data); err != nil {
		return nil, fmt.Errorf("benchmark index %s: %w", indexPath, err)
	}

	var instances []Instance
	if err := json.Unmarshal(data, &instances); err != nil {
		return nil, fmt.Errorf("benchmark index %s: %w", indexPath, err)
	}

	r := &Registry{
		fsys:      fsys,
		instances: instances,
		byName:    make(map[string]int, len(instances)),
	}
	for i, in := range instances {
		r.byName[in.Name] = i
	}
	return r, nil
}

// NewRegistryFromDir builds a registry over a directory holding an
// instances.json index alongside its instance files.
func NewRegistryFromDir(dir string) (*Registry, error) {
	return NewRegistry(os.DirFS(filepath.Clean(dir)), "instances.json")
}

// Default returns the registry over the instances shipped with the module.
func Default() (*Registry, error) {
	return NewRegistry(embedded, "instances.json")
}

// Instances lists the index entries.
func (r *Registry) Instances() []Instance {
	return r.instances
}

// Load resolves a benchmark by exact name and parses its instance file.
// The returned problem carries the instance name and its optimum.
func (r *Registry) Load(name string) (*problem.Problem, error) {
	i, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBenchmarkNotFound, name)
	}
	in := r.instances[i]

	f, err := r.fsys.Open(in.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", problem.ErrFileNotFound, in.Path)
	}
	defer f.Close()

	p, err := problem.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q: %w", name, err)
	}
	return p.Named(name).WithOptimum(in.optimum()), nil
}

// Load resolves a name against the default registry.
func Load(name string) (*problem.Problem, error) {
	r, err := Default()
	if err != nil {
		return nil, err
	}
	return r.Load(name)
}
