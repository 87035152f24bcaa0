// internal/config/scenario.go
//
// Scenario files pin the parameters of one or more models:
//
//	version: 1
//	name: baseline
//	models:
//	  electrolyzer:
//	    efficiency: 0.72
//	    water_load: 44.01
//	  dryer:
//	    pressure: 400
//
// Each model section is decoded onto that model's defaults, so omitted fields
// keep their default values. Unknown fields are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ScenarioVersion is the only file version understood.
const ScenarioVersion = 1

// Section is one model entry of a scenario, in file order.
type Section struct {
	Model string
	node  *yaml.Node
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Path     string
	Version  int
	Name     string
	Sections []Section
}

type scenarioFile struct {
	Version int       `yaml:"version"`
	Name    string    `yaml:"name"`
	Models  yaml.Node `yaml:"models"`
}

// LoadScenario reads and parses the scenario at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseScenario(path, data)
}

// ParseScenario parses scenario YAML; path is used for messages only.
func ParseScenario(path string, data []byte) (*Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: empty file", path)
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	sc := &Scenario{Path: path, Version: f.Version, Name: f.Name}
	if sc.Version == 0 {
		sc.Version = ScenarioVersion
	}
	if sc.Version != ScenarioVersion {
		return nil, fmt.Errorf("config: %s: unsupported version %d (want %d)", path, sc.Version, ScenarioVersion)
	}

	switch f.Models.Kind {
	case 0:
		return nil, fmt.Errorf("config: %s: no models section", path)
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("config: %s: line %d: models must be a mapping of model name to parameters", path, f.Models.Line)
	}
	seen := map[string]bool{}
	for i := 0; i+1 < len(f.Models.Content); i += 2 {
		key, val := f.Models.Content[i], f.Models.Content[i+1]
		name := strings.TrimSpace(key.Value)
		if seen[name] {
			return nil, fmt.Errorf("config: %s: line %d: model %q listed twice", path, key.Line, name)
		}
		seen[name] = true
		sc.Sections = append(sc.Sections, Section{Model: name, node: val})
	}
	if len(sc.Sections) == 0 {
		return nil, fmt.Errorf("config: %s: models section is empty", path)
	}
	return sc, nil
}

// Label names the scenario for reports: its name, else its path.
func (s *Scenario) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// Models lists the model names in file order.
func (s *Scenario) Models() []string {
	out := make([]string, len(s.Sections))
	for i, sec := range s.Sections {
		out[i] = sec.Model
	}
	return out
}

// Check rejects model names that known does not accept.
func (s *Scenario) Check(known func(string) bool) error {
	var unknown []string
	for _, sec := range s.Sections {
		if !known(sec.Model) {
			unknown = append(unknown, sec.Model)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("config: %s: unknown model(s): %s", s.Path, strings.Join(unknown, ", "))
	}
	return nil
}

// Decode decodes the named model's section onto dst, which should already
// hold defaults. It reports whether the scenario has a section for the model.
func (s *Scenario) Decode(model string, dst any) (bool, error) {
	for _, sec := range s.Sections {
		if sec.Model != model {
			continue
		}
		return true, sec.Decode(s.Path, dst)
	}
	return false, nil
}

// Decode strictly decodes the section onto dst.
func (sec Section) Decode(path string, dst any) error {
	n := sec.node
	if n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("config: %s: line %d: %s must be a mapping of parameters", path, n.Line, sec.Model)
	}
	// yaml.Node.Decode has no strict mode; round-trip through a Decoder.
	raw, err := yaml.Marshal(n)
	if err != nil {
		return fmt.Errorf("config: %s: %s: %w", path, sec.Model, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("config: %s: %s (section at line %d): %w", path, sec.Model, n.Line, err)
	}
	return nil
}
