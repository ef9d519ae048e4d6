package design

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceType tags what kind of source a file is
type SourceType string

// Known source types
const (
	SourceVerilog SourceType = "verilog"
	SourceVHDL    SourceType = "vhdl"
	SourceCocotb  SourceType = "cocotb"
	SourceUnknown SourceType = ""
)

// Source is one design or testbench source file. In YAML it is either a
// plain path or a mapping with file/type keys.
type Source struct {
	File string     `yaml:"file"`
	Type SourceType `yaml:"type,omitempty"`
}

// UnmarshalYAML accepts both a scalar path and a full mapping
func (s *Source) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.File = value.Value
		return nil
	}
	type raw Source
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	*s = Source(r)
	return nil
}

// ResolvedType returns the explicit type, or one inferred from the file
// extension when none is given
func (s Source) ResolvedType() SourceType {
	if s.Type != "" {
		return s.Type
	}
	switch strings.ToLower(filepath.Ext(s.File)) {
	case ".py":
		return SourceCocotb
	case ".v", ".sv":
		return SourceVerilog
	case ".vhd", ".vhdl":
		return SourceVHDL
	}
	return SourceUnknown
}

// StringList is a []string that also accepts a single YAML scalar
type StringList []string

// UnmarshalYAML accepts both a scalar and a sequence
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*l = StringList{value.Value}
		return nil
	}
	var out []string
	if err := value.Decode(&out); err != nil {
		return err
	}
	*l = out
	return nil
}

// Cocotb holds the cocotb section of a testbench
type Cocotb struct {
	// Module is the test module, optionally prefixed with a directory
	// relative to the design root ("pkg/mod")
	Module string `yaml:"module,omitempty"`
	// Toplevel overrides the simulation toplevel for the harness
	Toplevel string `yaml:"toplevel,omitempty"`
	// Testcase lists test cases declared by the design itself
	Testcase []string `yaml:"testcase,omitempty"`
}

// RTL is the synthesizable side of a design
type RTL struct {
	Top     string   `yaml:"top,omitempty"`
	Sources []Source `yaml:"sources,omitempty"`
}

// Testbench is the verification side of a design
type Testbench struct {
	Top     StringList `yaml:"top,omitempty"`
	Sources []Source   `yaml:"sources,omitempty"`
	Cocotb  *Cocotb    `yaml:"cocotb,omitempty"`
}

// SourcesOfType returns the testbench sources whose resolved type is t,
// preserving declaration order
func (tb *Testbench) SourcesOfType(t SourceType) []Source {
	var out []Source
	for _, s := range tb.Sources {
		if s.ResolvedType() == t {
			out = append(out, s)
		}
	}
	return out
}

// Design is the declarative description of a design under test
type Design struct {
	Name string `yaml:"name"`
	// RootPath is the directory the design file lives in; relative source
	// and module paths resolve against it
	RootPath string    `yaml:"-"`
	RTL      RTL       `yaml:"rtl"`
	TB       Testbench `yaml:"tb"`
}
