package textapi

import (
	"fmt"
	"net/http"

	apierrors "github.com/textkit/textapi/errors"
)

// Request is a fully assembled request, ready for a Transport.
// It is owned by the transport once passed to it and must not be modified.
type Request struct {
	// Operation is the name of the operation which produced the request.
	Operation string

	Method string

	// Path is the path template with placeholders substituted.
	Path string

	PathParams map[string]string

	// Query contains only present query parameters, with their original
	// values (e.g. bool false stays false). Nil if there are none.
	Query map[string]interface{}

	// Body is nil for bodyless operations, the value itself for raw body
	// operations and map[string]interface{} of JSON fields otherwise.
	Body interface{}

	// Form contains parts of multipart/form-data body. Nil if the operation
	// has no form fields.
	Form map[string]FormPart

	Header http.Header
}

// FormPart is one part of a multipart/form-data body. Data is a string,
// []byte or io.Reader.
type FormPart struct {
	Data        interface{}
	ContentType string
}

const analyticsHeader = "X-IBMCloud-SDK-Analytics"

// Build checks that all required parameters are present and assembles
// the request. The only possible error is *errors.MissingParametersError.
func (op *Operation) Build(p *Params) (*Request, error) {
	if missing := op.missing(p); len(missing) != 0 {
		return nil, &apierrors.MissingParametersError{
			Operation: op.Name,
			Params:    missing,
		}
	}

	req := &Request{
		Operation: op.Name,
		Method:    op.Method,
		Header:    make(http.Header),
	}

	req.Header.Set("Accept", "application/json")
	if contentType := op.defaultContentType(); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(analyticsHeader, fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s", op.ServiceName, op.ServiceVersion, op.Name))

	pathParams := make(map[string]string)
	var jsonBody map[string]interface{}
	if op.hasLocation(InBody) {
		jsonBody = make(map[string]interface{})
		req.Body = jsonBody
	}
	if op.hasLocation(InForm) {
		req.Form = make(map[string]FormPart)
	}

	for _, f := range op.Fields {
		value, has := p.Get(f.Param)
		if !has {
			continue
		}
		switch f.Location {
		case InPath:
			pathParams[f.Name] = formatValue(value)
		case InQuery:
			if req.Query == nil {
				req.Query = make(map[string]interface{})
			}
			req.Query[f.Name] = value
		case InHeader:
			req.Header.Set(f.Name, formatValue(value))
		case InBody:
			jsonBody[f.Name] = value
		case InRawBody:
			req.Body = value
		case InForm:
			req.Form[f.Name] = FormPart{
				Data:        value,
				ContentType: f.ContentType,
			}
		}
	}

	for k, v := range p.Headers() {
		req.Header.Set(k, v)
	}

	path, err := buildPath(op.Path, pathParams)
	if err != nil {
		// Unreachable for operations accepted by MustOperations.
		panic(fmt.Sprintf("operation %s: %v", op.Name, err))
	}
	req.Path = path
	req.PathParams = pathParams

	return req, nil
}

func (op *Operation) missing(p *Params) []string {
	var missing []string
	for _, name := range op.Required {
		if _, has := p.Get(name); !has {
			missing = append(missing, name)
		}
	}
	return missing
}
