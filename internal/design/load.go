package design

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a design description from a YAML file. Source file paths are
// resolved to absolute paths against the design root.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design file: %w", err)
	}

	var d Design
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse design file %s: %w", path, err)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolve design root: %w", err)
	}
	d.RootPath = root

	resolveSources(d.RTL.Sources, root)
	resolveSources(d.TB.Sources, root)

	if d.Name == "" {
		base := filepath.Base(path)
		d.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return &d, nil
}

func resolveSources(sources []Source, root string) {
	for i := range sources {
		if !filepath.IsAbs(sources[i].File) {
			sources[i].File = filepath.Join(root, sources[i].File)
		}
	}
}
