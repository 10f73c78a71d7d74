package toneanalyzerv3

import (
	"net/http"

	"github.com/textkit/textapi"
)

const (
	serviceName    = "tone_analyzer"
	serviceVersion = "V3"
)

var (
	toneOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "tone",
		Method:         http.MethodPost,
		Path:           "/v3/tone",
		Required:       []string{"toneInput"},
		Fields: []textapi.Field{
			{Param: "toneInput", Location: textapi.InRawBody},
			{Param: "contentType", Location: textapi.InHeader, Name: "Content-Type"},
			{Param: "sentences", Location: textapi.InQuery, Name: "sentences"},
			{Param: "tones", Location: textapi.InQuery, Name: "tones"},
			{Param: "contentLanguage", Location: textapi.InHeader, Name: "Content-Language"},
			{Param: "acceptLanguage", Location: textapi.InHeader, Name: "Accept-Language"},
			{Param: "version", Location: textapi.InQuery, Name: "version"},
		},
	}

	toneChatOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "toneChat",
		Method:         http.MethodPost,
		Path:           "/v3/tone_chat",
		Required:       []string{"utterances"},
		Fields: []textapi.Field{
			{Param: "utterances", Location: textapi.InBody, Name: "utterances"},
			{Param: "contentLanguage", Location: textapi.InHeader, Name: "Content-Language"},
			{Param: "acceptLanguage", Location: textapi.InHeader, Name: "Accept-Language"},
			{Param: "version", Location: textapi.InQuery, Name: "version"},
		},
	}

	operations = textapi.MustOperations(
		toneOp,
		toneChatOp,
	)
)

// Operations returns the operations of the service. The result must not
// be modified.
func Operations() []*textapi.Operation {
	return operations
}
