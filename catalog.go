package textapi

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type catalogParam struct {
	Name        string `yaml:"name"`
	In          string `yaml:"in"`
	Wire        string `yaml:"wire,omitempty"`
	ContentType string `yaml:"content_type,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

type catalogEntry struct {
	Method   string         `yaml:"method"`
	Path     string         `yaml:"path"`
	Required []string       `yaml:"required,omitempty"`
	Params   []catalogParam `yaml:"params,omitempty"`
}

// WriteCatalog writes a YAML catalog of operations grouped by service:
//
//	natural_language_classifier/V1:
//	  classify:
//	    method: POST
//	    path: /v1/classifiers/{classifier_id}/classify
//	    ...
func WriteCatalog(w io.Writer, ops []*Operation) error {
	catalog := make(map[string]map[string]catalogEntry)
	for _, op := range ops {
		service := op.ServiceName + "/" + op.ServiceVersion
		if _, has := catalog[service]; !has {
			catalog[service] = make(map[string]catalogEntry)
		}

		required := make(map[string]bool, len(op.Required))
		for _, name := range op.Required {
			required[name] = true
		}
		entry := catalogEntry{
			Method:   op.Method,
			Path:     op.Path,
			Required: op.Required,
		}
		for _, f := range op.Fields {
			entry.Params = append(entry.Params, catalogParam{
				Name:        f.Param,
				In:          f.Location.String(),
				Wire:        f.Name,
				ContentType: f.ContentType,
				Required:    required[f.Param],
			})
		}
		catalog[service][op.Name] = entry
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(catalog); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return encoder.Close()
}
