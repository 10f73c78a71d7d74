package naturallanguageclassifierv1

import (
	"net/http"

	"github.com/textkit/textapi"
)

const (
	serviceName    = "natural_language_classifier"
	serviceVersion = "V1"
)

var (
	classifyOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "classify",
		Method:         http.MethodPost,
		Path:           "/v1/classifiers/{classifier_id}/classify",
		Required:       []string{"classifierId", "text"},
		Fields: []textapi.Field{
			{Param: "classifierId", Location: textapi.InPath, Name: "classifier_id"},
			{Param: "text", Location: textapi.InBody, Name: "text"},
		},
	}

	classifyCollectionOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "classifyCollection",
		Method:         http.MethodPost,
		Path:           "/v1/classifiers/{classifier_id}/classify_collection",
		Required:       []string{"classifierId", "collection"},
		Fields: []textapi.Field{
			{Param: "classifierId", Location: textapi.InPath, Name: "classifier_id"},
			{Param: "collection", Location: textapi.InBody, Name: "collection"},
		},
	}

	createClassifierOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "createClassifier",
		Method:         http.MethodPost,
		Path:           "/v1/classifiers",
		Required:       []string{"trainingMetadata", "trainingData"},
		Fields: []textapi.Field{
			{Param: "trainingMetadata", Location: textapi.InForm, Name: "training_metadata", ContentType: "application/json"},
			{Param: "trainingData", Location: textapi.InForm, Name: "training_data", ContentType: "text/csv"},
		},
	}

	listClassifiersOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "listClassifiers",
		Method:         http.MethodGet,
		Path:           "/v1/classifiers",
	}

	getClassifierOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "getClassifier",
		Method:         http.MethodGet,
		Path:           "/v1/classifiers/{classifier_id}",
		Required:       []string{"classifierId"},
		Fields: []textapi.Field{
			{Param: "classifierId", Location: textapi.InPath, Name: "classifier_id"},
		},
	}

	deleteClassifierOp = &textapi.Operation{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Name:           "deleteClassifier",
		Method:         http.MethodDelete,
		Path:           "/v1/classifiers/{classifier_id}",
		Required:       []string{"classifierId"},
		Fields: []textapi.Field{
			{Param: "classifierId", Location: textapi.InPath, Name: "classifier_id"},
		},
	}

	operations = textapi.MustOperations(
		classifyOp,
		classifyCollectionOp,
		createClassifierOp,
		listClassifiersOp,
		getClassifierOp,
		deleteClassifierOp,
	)
)

// Operations returns the operations of the service. The result must not
// be modified.
func Operations() []*textapi.Operation {
	return operations
}
