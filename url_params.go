package textapi

import (
	"fmt"
	"net/url"
	"strings"
)

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	for len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// placeholder returns the name inside "{name}" or "" if part is static.
func placeholder(part string) string {
	if len(part) > 2 && strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
		return part[1 : len(part)-1]
	}
	return ""
}

func findPlaceholders(template string) ([]string, error) {
	parts := strings.Split(template, "/")
	result := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		name := placeholder(part)
		if name == "" {
			if strings.ContainsAny(part, "{}") {
				return nil, fmt.Errorf("malformed path segment %q", part)
			}
			continue
		}
		if _, has := seen[name]; has {
			return nil, fmt.Errorf("placeholder {%s} is used twice", name)
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result, nil
}

func buildPath(template string, param2value map[string]string) (string, error) {
	parts := strings.Split(template, "/")
	replaced := 0
	for i, part := range parts {
		name := placeholder(part)
		if name == "" {
			continue
		}
		value, has := param2value[name]
		if !has {
			return "", fmt.Errorf("unknown parameter: %s", name)
		}
		parts[i] = url.PathEscape(value)
		replaced++
	}
	if replaced != len(param2value) {
		return "", fmt.Errorf("not all parameters were built into URL: want %d, got %d", len(param2value), replaced)
	}
	return strings.Join(parts, "/"), nil
}

// MatchPath reports whether path matches the template and returns the
// unescaped values of its placeholders.
func MatchPath(template, path string) (map[string]string, bool) {
	maskParts := splitPath(template)
	pathParts := splitPath(path)
	if len(pathParts) != len(maskParts) {
		return nil, false
	}
	// Check if all static parts match.
	for i, mask := range maskParts {
		if placeholder(mask) == "" && pathParts[i] != mask {
			return nil, false
		}
	}
	// Fill values of the parameters.
	param2value := make(map[string]string)
	for i, mask := range maskParts {
		name := placeholder(mask)
		if name == "" {
			continue
		}
		value, err := url.PathUnescape(pathParts[i])
		if err != nil {
			return nil, false
		}
		param2value[name] = value
	}
	return param2value, true
}
