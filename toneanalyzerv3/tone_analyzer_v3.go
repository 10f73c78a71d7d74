// Package toneanalyzerv3 is a client of Tone Analyzer V3. The service uses
// linguistic analysis to detect emotional and language tones in written
// text.
package toneanalyzerv3

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/textkit/textapi"
)

// DefaultServiceURL is the default URL to make service requests to.
const DefaultServiceURL = "https://api.us-south.tone-analyzer.watson.cloud.ibm.com"

// DefaultServiceName is the name used to look up external configuration.
const DefaultServiceName = "tone_analyzer"

var validate = validator.New()

// ToneAnalyzerV3 : Detect emotional and language tones in written text.
type ToneAnalyzerV3 struct {
	Service *textapi.BaseService

	// Version of the API, sent with every call.
	Version string
}

// ToneAnalyzerV3Options : Service options.
type ToneAnalyzerV3Options struct {
	// Defaults to DefaultServiceURL.
	URL string

	Authenticator textapi.Authenticator

	// The API version date, e.g. 2017-09-21.
	Version string `validate:"required,datetime=2006-01-02"`

	Transport     textapi.Transport
	Logger        *zap.Logger
	ClientOptions []textapi.Option
}

// NewToneAnalyzerV3 constructs an instance of the service client with the
// given options.
func NewToneAnalyzerV3(options *ToneAnalyzerV3Options) (*ToneAnalyzerV3, error) {
	if options == nil {
		options = &ToneAnalyzerV3Options{}
	}
	if err := validate.Struct(options); err != nil {
		return nil, fmt.Errorf("invalid tone analyzer options: %w", err)
	}
	url := options.URL
	if url == "" {
		url = DefaultServiceURL
	}
	service, err := textapi.NewBaseService(&textapi.ServiceOptions{
		URL:           url,
		Authenticator: options.Authenticator,
		Transport:     options.Transport,
		Logger:        options.Logger,
		ClientOptions: options.ClientOptions,
	})
	if err != nil {
		return nil, err
	}
	return &ToneAnalyzerV3{
		Service: service,
		Version: options.Version,
	}, nil
}

// NewToneAnalyzerV3UsingExternalConfig is like NewToneAnalyzerV3, but URL
// and Authenticator which are not set are read from configuration of
// serviceName (DefaultServiceName if empty).
func NewToneAnalyzerV3UsingExternalConfig(serviceName string, options *ToneAnalyzerV3Options) (*ToneAnalyzerV3, error) {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	if options == nil {
		options = &ToneAnalyzerV3Options{}
	}
	serviceOptions, err := textapi.NewServiceOptionsFromEnvironment(serviceName, DefaultServiceURL, &textapi.ServiceOptions{
		URL:           options.URL,
		Authenticator: options.Authenticator,
	})
	if err != nil {
		return nil, err
	}
	filled := *options
	filled.URL = serviceOptions.URL
	filled.Authenticator = serviceOptions.Authenticator
	return NewToneAnalyzerV3(&filled)
}

func (ta *ToneAnalyzerV3) Close() error {
	return ta.Service.Close()
}

// Tone : Analyze general tone.
// Use the general-purpose endpoint to analyze the tone of your input
// content. The service analyzes the content for emotional and language
// tones. The result decodes into ToneAnalysis.
//
// JSON input is UTF-8. For plain text and HTML input set the charset in
// the content type.
func (ta *ToneAnalyzerV3) Tone(ctx context.Context, options *ToneOptions) (*textapi.DetailedResponse, error) {
	return ta.Service.Request(ctx, toneOp, options.params(ta.Version))
}

func (ta *ToneAnalyzerV3) ToneAsync(ctx context.Context, options *ToneOptions) *textapi.Future {
	return ta.Service.RequestAsync(ctx, toneOp, options.params(ta.Version))
}

// ToneChat : Analyze customer-engagement tone.
// Use the customer-engagement endpoint to analyze the tone of
// customer-service and customer-support conversations. The result decodes
// into UtteranceAnalyses.
func (ta *ToneAnalyzerV3) ToneChat(ctx context.Context, options *ToneChatOptions) (*textapi.DetailedResponse, error) {
	return ta.Service.Request(ctx, toneChatOp, options.params(ta.Version))
}

func (ta *ToneAnalyzerV3) ToneChatAsync(ctx context.Context, options *ToneChatOptions) *textapi.Future {
	return ta.Service.RequestAsync(ctx, toneChatOp, options.params(ta.Version))
}
