package textapi

import (
	"net/http"

	spec "github.com/getkin/kin-openapi/openapi3"
)

// OpenAPI describes operations as an OpenAPI 3 document. Parameter values
// are described as strings and bodies as free-form, since operations do
// not carry types.
func OpenAPI(title, version string, ops []*Operation) *spec.T {
	doc := &spec.T{
		OpenAPI: "3.0.3",
		Info: &spec.Info{
			Title:   title,
			Version: version,
		},
		Paths: spec.Paths{},
	}

	for _, op := range ops {
		pathItem := doc.Paths[op.Path]
		if pathItem == nil {
			pathItem = &spec.PathItem{}
			doc.Paths[op.Path] = pathItem
		}
		pathItem.SetOperation(op.Method, openAPIOperation(op))
	}
	return doc
}

func openAPIOperation(op *Operation) *spec.Operation {
	required := make(map[string]bool, len(op.Required))
	for _, name := range op.Required {
		required[name] = true
	}

	o := spec.NewOperation()
	o.OperationID = op.Name
	o.Tags = []string{op.ServiceName}

	for _, f := range op.Fields {
		var p *spec.Parameter
		switch f.Location {
		case InPath:
			p = spec.NewPathParameter(f.Name)
		case InQuery:
			p = spec.NewQueryParameter(f.Name)
		case InHeader:
			// Content-Type is described by the request body.
			if http.CanonicalHeaderKey(f.Name) == "Content-Type" {
				continue
			}
			p = spec.NewHeaderParameter(f.Name)
		default:
			continue
		}
		p.Required = required[f.Param]
		p.Schema = spec.NewStringSchema().NewRef()
		o.AddParameter(p)
	}

	if body := openAPIRequestBody(op, required); body != nil {
		o.RequestBody = &spec.RequestBodyRef{Value: body}
	}

	description := "success"
	o.AddResponse(http.StatusOK, spec.NewResponse().
		WithDescription(description).
		WithContent(spec.NewContentWithJSONSchema(spec.NewSchema())))
	return o
}

func openAPIRequestBody(op *Operation, required map[string]bool) *spec.RequestBody {
	switch {
	case op.hasLocation(InRawBody):
		f := op.ParamsIn(InRawBody)[0]
		return spec.NewRequestBody().
			WithRequired(required[f.Param]).
			WithContent(spec.NewContentWithSchema(spec.NewSchema(), []string{"*/*"}))

	case op.hasLocation(InBody):
		schema := spec.NewObjectSchema()
		for _, f := range op.ParamsIn(InBody) {
			schema.WithProperty(f.Name, spec.NewSchema())
			if required[f.Param] {
				schema.Required = append(schema.Required, f.Name)
			}
		}
		return spec.NewRequestBody().
			WithRequired(len(schema.Required) != 0).
			WithContent(spec.NewContentWithJSONSchema(schema))

	case op.hasLocation(InForm):
		schema := spec.NewObjectSchema()
		encoding := make(map[string]*spec.Encoding)
		for _, f := range op.ParamsIn(InForm) {
			schema.WithProperty(f.Name, spec.NewStringSchema().WithFormat("binary"))
			if required[f.Param] {
				schema.Required = append(schema.Required, f.Name)
			}
			encoding[f.Name] = &spec.Encoding{ContentType: f.ContentType}
		}
		content := spec.NewContentWithFormDataSchema(schema)
		content.Get("multipart/form-data").Encoding = encoding
		return spec.NewRequestBody().
			WithRequired(len(schema.Required) != 0).
			WithContent(content)
	}
	return nil
}
