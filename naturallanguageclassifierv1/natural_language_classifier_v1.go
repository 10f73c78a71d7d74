// Package naturallanguageclassifierv1 is a client of Natural Language
// Classifier V1. The service uses machine learning to classify short texts
// into predefined classes.
package naturallanguageclassifierv1

import (
	"context"

	"go.uber.org/zap"

	"github.com/textkit/textapi"
)

// DefaultServiceURL is the default URL to make service requests to.
const DefaultServiceURL = "https://api.us-south.natural-language-classifier.watson.cloud.ibm.com"

// DefaultServiceName is the name used to look up external configuration.
const DefaultServiceName = "natural_language_classifier"

// NaturalLanguageClassifierV1 : Identify useful patterns in text.
type NaturalLanguageClassifierV1 struct {
	Service *textapi.BaseService
}

// NaturalLanguageClassifierV1Options : Service options.
type NaturalLanguageClassifierV1Options struct {
	// Defaults to DefaultServiceURL.
	URL string

	Authenticator textapi.Authenticator

	Transport     textapi.Transport
	Logger        *zap.Logger
	ClientOptions []textapi.Option
}

// NewNaturalLanguageClassifierV1 constructs an instance of the service
// client with the given options.
func NewNaturalLanguageClassifierV1(options *NaturalLanguageClassifierV1Options) (*NaturalLanguageClassifierV1, error) {
	if options == nil {
		options = &NaturalLanguageClassifierV1Options{}
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
	return &NaturalLanguageClassifierV1{Service: service}, nil
}

// NewNaturalLanguageClassifierV1UsingExternalConfig is like
// NewNaturalLanguageClassifierV1, but URL and Authenticator which are not
// set are read from configuration of serviceName (DefaultServiceName if
// empty), see textapi.GetServiceProperties.
func NewNaturalLanguageClassifierV1UsingExternalConfig(serviceName string, options *NaturalLanguageClassifierV1Options) (*NaturalLanguageClassifierV1, error) {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	if options == nil {
		options = &NaturalLanguageClassifierV1Options{}
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
	return NewNaturalLanguageClassifierV1(&filled)
}

// Close releases connections of the service client.
func (nlc *NaturalLanguageClassifierV1) Close() error {
	return nlc.Service.Close()
}

// Classify : Classify a phrase.
// Returns label information for the input. The status must be `Available`
// before you can use the classifier to classify text. The result decodes
// into Classification.
func (nlc *NaturalLanguageClassifierV1) Classify(ctx context.Context, options *ClassifyOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, classifyOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) ClassifyAsync(ctx context.Context, options *ClassifyOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, classifyOp, options.params())
}

// ClassifyCollection : Classify multiple phrases.
// Returns label information for multiple phrases. The status must be
// `Available` before you can use the classifier to classify text.
// Note that classifying Japanese texts is a beta feature. The result
// decodes into ClassificationCollection.
func (nlc *NaturalLanguageClassifierV1) ClassifyCollection(ctx context.Context, options *ClassifyCollectionOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, classifyCollectionOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) ClassifyCollectionAsync(ctx context.Context, options *ClassifyCollectionOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, classifyCollectionOp, options.params())
}

// CreateClassifier : Create classifier.
// Sends data to create and train a classifier and returns information
// about the new classifier. The result decodes into Classifier.
func (nlc *NaturalLanguageClassifierV1) CreateClassifier(ctx context.Context, options *CreateClassifierOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, createClassifierOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) CreateClassifierAsync(ctx context.Context, options *CreateClassifierOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, createClassifierOp, options.params())
}

// ListClassifiers : List classifiers.
// Returns an empty array if no classifiers are available. options may be
// nil. The result decodes into ClassifierList.
func (nlc *NaturalLanguageClassifierV1) ListClassifiers(ctx context.Context, options *ListClassifiersOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, listClassifiersOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) ListClassifiersAsync(ctx context.Context, options *ListClassifiersOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, listClassifiersOp, options.params())
}

// GetClassifier : Get information about a classifier.
// Returns status and other information about a classifier. The result
// decodes into Classifier.
func (nlc *NaturalLanguageClassifierV1) GetClassifier(ctx context.Context, options *GetClassifierOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, getClassifierOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) GetClassifierAsync(ctx context.Context, options *GetClassifierOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, getClassifierOp, options.params())
}

// DeleteClassifier : Delete classifier.
func (nlc *NaturalLanguageClassifierV1) DeleteClassifier(ctx context.Context, options *DeleteClassifierOptions) (*textapi.DetailedResponse, error) {
	return nlc.Service.Request(ctx, deleteClassifierOp, options.params())
}

func (nlc *NaturalLanguageClassifierV1) DeleteClassifierAsync(ctx context.Context, options *DeleteClassifierOptions) *textapi.Future {
	return nlc.Service.RequestAsync(ctx, deleteClassifierOp, options.params())
}
