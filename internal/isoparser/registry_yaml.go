package isoparser

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlMappingFile is the on-disk shape of a declarative mapping file. Each
// mapping produces a GenericDocument registration.
type yamlMappingFile struct {
	Mappings []yamlMapping `yaml:"mappings"`
}

type yamlMapping struct {
	Type   string      `yaml:"type"`
	Root   string      `yaml:"root"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name     string   `yaml:"name"`
	Paths    []string `yaml:"paths"`
	Path     string   `yaml:"path"`
	Kind     string   `yaml:"kind"`
	Required bool     `yaml:"required"`
}

// LoadMappings reads declarative mappings from a YAML stream and registers
// them. Field entries accept either a single path or an ordered paths list.
func LoadMappings(r *Registry, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read mapping stream: %w", err)
	}

	var file yamlMappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	for _, mapping := range file.Mappings {
		reg, err := buildRegistration(mapping)
		if err != nil {
			return err
		}
		if err := r.Register(reg); err != nil {
			return err
		}
	}
	return nil
}

// LoadMappingFile reads declarative mappings from a YAML file.
func LoadMappingFile(r *Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open mapping file %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadMappings(r, f); err != nil {
		return fmt.Errorf("mapping file %s: %w", path, err)
	}
	return nil
}

func buildRegistration(mapping yamlMapping) (Registration, error) {
	if mapping.Type == "" || mapping.Root == "" {
		return Registration{}, fmt.Errorf("mapping needs a type and a root element")
	}

	fields := make([]FieldMapping, 0, len(mapping.Fields))
	var required []string
	for _, field := range mapping.Fields {
		if field.Name == "" {
			return Registration{}, fmt.Errorf("mapping %s: field without a name", mapping.Type)
		}
		paths := field.Paths
		if len(paths) == 0 && field.Path != "" {
			paths = []string{field.Path}
		}
		if len(paths) == 0 {
			return Registration{}, fmt.Errorf("mapping %s: field %s has no path", mapping.Type, field.Name)
		}
		kind, err := ParseCoerceKind(field.Kind)
		if err != nil {
			return Registration{}, fmt.Errorf("mapping %s: field %s: %w", mapping.Type, field.Name, err)
		}
		fields = append(fields, FieldMapping{
			Name:     field.Name,
			Paths:    paths,
			Kind:     kind,
			Required: field.Required,
		})
		if field.Required {
			required = append(required, field.Name)
		}
	}

	typeID := mapping.Type
	return Registration{
		TypeID: typeID,
		Root:   mapping.Root,
		Fields: fields,
		New: func() Document {
			return NewGenericDocument(typeID, required)
		},
	}, nil
}
