package textapi

import (
	"encoding"
	"fmt"
	"net/url"
	"strings"
)

// formatValue renders a parameter value for a path segment, query entry
// or header. Lists are comma-joined, as the services expect.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(text)
	}
	return fmt.Sprintf("%v", value)
}

func encodeQuery(query map[string]interface{}) url.Values {
	values := make(url.Values, len(query))
	for k, v := range query {
		values.Set(k, formatValue(v))
	}
	return values
}
