package shared

import "encoding/json"

// ErrorMessage covers the JSON error shapes returned by the services.
type ErrorMessage struct {
	Error        string          `json:"error"`
	Message      string          `json:"message"`
	ErrorMessage string          `json:"errorMessage"`
	Description  string          `json:"description"`
	Errors       []ErrorMessage  `json:"errors"`
	Code         json.RawMessage `json:"code,omitempty"`
}

// Text returns the most specific human readable message found in body,
// or "" if body is not a recognized JSON error.
func Text(body []byte) string {
	var msg ErrorMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	return msg.text()
}

func (m *ErrorMessage) text() string {
	if len(m.Errors) != 0 {
		if t := m.Errors[0].text(); t != "" {
			return t
		}
	}
	for _, t := range []string{m.Error, m.Message, m.ErrorMessage, m.Description} {
		if t != "" {
			return t
		}
	}
	return ""
}
