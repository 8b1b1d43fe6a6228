package game

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// VariantSet holds named configs, each a set of overrides on DefaultConfig.
type VariantSet struct {
	configs map[string]Config
}

type variantFile struct {
	Variants map[string]yaml.Node `yaml:"variants"`
}

// LoadVariants reads a variants YAML file.
func LoadVariants(path string) (*VariantSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants: %w", err)
	}
	return ParseVariants(data)
}

// ParseVariants decodes each variant on top of a fresh DefaultConfig, so a
// variant only lists what it changes.
func ParseVariants(data []byte) (*VariantSet, error) {
	var file variantFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse variants: %w", err)
	}

	set := &VariantSet{configs: make(map[string]Config, len(file.Variants))}
	for name, node := range file.Variants {
		cfg := DefaultConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode variant %q: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("variant %q: %w", name, err)
		}
		set.configs[name] = cfg
	}
	return set, nil
}

func (v *VariantSet) Config(name string) (Config, error) {
	cfg, ok := v.configs[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return cfg, nil
}

// Names returns the variant names in sorted order.
func (v *VariantSet) Names() []string {
	names := make([]string, 0, len(v.configs))
	for name := range v.configs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
