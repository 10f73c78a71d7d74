package textapi

// Params holds the named values of one call, plus headers supplied by the
// caller. Absent parameters are simply not set: setters ignore nil values,
// nil pointers and nil slices. The zero value is ready to use.
// A nil *Params is accepted everywhere and means "no parameters".
type Params struct {
	values  map[string]interface{}
	headers map[string]string
}

func NewParams() *Params {
	return &Params{
		values: make(map[string]interface{}),
	}
}

// Set sets parameter name to value. A nil value leaves it absent.
func (p *Params) Set(name string, value interface{}) *Params {
	if value != nil {
		p.set(name, value)
	}
	return p
}

func (p *Params) SetString(name string, value *string) *Params {
	if value != nil {
		p.set(name, *value)
	}
	return p
}

func (p *Params) SetBool(name string, value *bool) *Params {
	if value != nil {
		p.set(name, *value)
	}
	return p
}

func (p *Params) SetStrings(name string, value []string) *Params {
	if value != nil {
		p.set(name, value)
	}
	return p
}

func (p *Params) set(name string, value interface{}) {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	p.values[name] = value
}

// SetHeaders adds caller headers. They override every header computed
// from the operation, including Accept and Content-Type.
func (p *Params) SetHeaders(headers map[string]string) *Params {
	if len(headers) == 0 {
		return p
	}
	if p.headers == nil {
		p.headers = make(map[string]string, len(headers))
	}
	for k, v := range headers {
		p.headers[k] = v
	}
	return p
}

// Get returns the value of parameter name and whether it is present.
func (p *Params) Get(name string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	value, has := p.values[name]
	return value, has
}

// Headers returns caller headers. The map must not be modified.
func (p *Params) Headers() map[string]string {
	if p == nil {
		return nil
	}
	return p.headers
}

// StringPtr returns a pointer to s, for optional fields of options structs.
func StringPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}
