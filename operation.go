package textapi

import (
	"fmt"
	"net/http"
)

// Location says where a parameter goes in the HTTP request.
type Location int

const (
	// InPath fills a {placeholder} of the path template.
	InPath Location = iota
	// InQuery adds a query string entry.
	InQuery
	// InHeader sets a request header.
	InHeader
	// InBody adds a field of the JSON object sent as body.
	InBody
	// InRawBody sends the value itself as body.
	InRawBody
	// InForm adds a part of a multipart/form-data body.
	InForm
)

func (l Location) String() string {
	switch l {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InHeader:
		return "header"
	case InBody:
		return "body"
	case InRawBody:
		return "raw body"
	case InForm:
		return "form"
	}
	return fmt.Sprintf("Location(%d)", int(l))
}

// Field maps a named parameter of an operation to its place in the request.
type Field struct {
	// Param is the name of the parameter, e.g. "classifierId".
	Param string

	Location Location

	// Name is the wire name: placeholder, query key, header name,
	// JSON field name or form part name. Unused for InRawBody.
	Name string

	// ContentType of the form part. Only for InForm.
	ContentType string
}

// Operation describes one endpoint of a service. Operations are declared
// once per service in a table built with MustOperations and must not be
// modified afterwards: the same value is shared by all calls.
type Operation struct {
	// ServiceName and ServiceVersion end up in the analytics header.
	ServiceName    string
	ServiceVersion string

	// Name of the operation, e.g. "classify".
	Name string

	// HTTP method.
	Method string

	// Path template, e.g. "/v1/classifiers/{classifier_id}".
	Path string

	// Required parameter names, in the order they are reported when missing.
	Required []string

	Fields []Field
}

// MustOperations validates operations and returns them as a table.
// It panics if an operation is inconsistent.
func MustOperations(ops ...*Operation) []*Operation {
	names := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		if err := op.validate(); err != nil {
			panic(fmt.Sprintf("operation %s: %v", op.Name, err))
		}
		if _, has := names[op.Name]; has {
			panic(fmt.Sprintf("duplicate operation %s", op.Name))
		}
		names[op.Name] = struct{}{}
	}
	return ops
}

func (op *Operation) validate() error {
	switch op.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead:
	default:
		return fmt.Errorf("unsupported HTTP method %q", op.Method)
	}
	if op.Name == "" {
		return fmt.Errorf("empty name")
	}

	required := make(map[string]bool, len(op.Required))
	for _, name := range op.Required {
		required[name] = true
	}
	params := make(map[string]struct{}, len(op.Fields))
	pathFields := make(map[string]Field)
	var rawBody, body, form int
	for _, f := range op.Fields {
		if _, has := params[f.Param]; has {
			return fmt.Errorf("parameter %s is mapped twice", f.Param)
		}
		params[f.Param] = struct{}{}
		if f.Location != InRawBody && f.Name == "" {
			return fmt.Errorf("parameter %s has no wire name", f.Param)
		}
		switch f.Location {
		case InPath:
			if !required[f.Param] {
				return fmt.Errorf("path parameter %s must be required", f.Param)
			}
			pathFields[f.Name] = f
		case InRawBody:
			rawBody++
		case InBody:
			body++
		case InForm:
			if f.ContentType == "" {
				return fmt.Errorf("form parameter %s has no content type", f.Param)
			}
			form++
		}
	}
	for name := range required {
		if _, has := params[name]; !has {
			return fmt.Errorf("required parameter %s is not mapped", name)
		}
	}
	if rawBody > 1 {
		return fmt.Errorf("more than one raw body parameter")
	}
	if (rawBody != 0 && (body != 0 || form != 0)) || (body != 0 && form != 0) {
		return fmt.Errorf("raw body, JSON body and form parameters can not be mixed")
	}

	placeholders, err := findPlaceholders(op.Path)
	if err != nil {
		return err
	}
	if len(placeholders) != len(pathFields) {
		return fmt.Errorf("path %s has %d placeholders, but %d path parameters are mapped", op.Path, len(placeholders), len(pathFields))
	}
	for _, name := range placeholders {
		if _, has := pathFields[name]; !has {
			return fmt.Errorf("placeholder {%s} has no path parameter", name)
		}
	}
	return nil
}

func (op *Operation) hasLocation(l Location) bool {
	for _, f := range op.Fields {
		if f.Location == l {
			return true
		}
	}
	return false
}

// defaultContentType is the Content-Type used unless a header parameter
// or the caller sets one. Raw bodies have no default: their content type
// is declared by the caller.
func (op *Operation) defaultContentType() string {
	switch {
	case op.hasLocation(InForm):
		return "multipart/form-data"
	case op.hasLocation(InBody):
		return "application/json"
	}
	return ""
}

// ParamsIn returns the fields of op with the given location.
func (op *Operation) ParamsIn(l Location) []Field {
	var fields []Field
	for _, f := range op.Fields {
		if f.Location == l {
			fields = append(fields, f)
		}
	}
	return fields
}
