package naturallanguageclassifierv1

import (
	"io"

	"github.com/textkit/textapi"
)

// ClassifyOptions : The Classify options.
type ClassifyOptions struct {
	// Classifier ID to use.
	ClassifierID *string

	// The submitted phrase. The maximum length is 2048 characters.
	Text *string

	// Allows users to set headers on API requests.
	Headers map[string]string
}

func NewClassifyOptions(classifierID string, text string) *ClassifyOptions {
	return &ClassifyOptions{
		ClassifierID: textapi.StringPtr(classifierID),
		Text:         textapi.StringPtr(text),
	}
}

func (o *ClassifyOptions) SetClassifierID(classifierID string) *ClassifyOptions {
	o.ClassifierID = textapi.StringPtr(classifierID)
	return o
}

func (o *ClassifyOptions) SetText(text string) *ClassifyOptions {
	o.Text = textapi.StringPtr(text)
	return o
}

func (o *ClassifyOptions) SetHeaders(headers map[string]string) *ClassifyOptions {
	o.Headers = headers
	return o
}

func (o *ClassifyOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	return p.
		SetString("classifierId", o.ClassifierID).
		SetString("text", o.Text).
		SetHeaders(o.Headers)
}

// ClassifyCollectionOptions : The ClassifyCollection options.
type ClassifyCollectionOptions struct {
	ClassifierID *string

	// The submitted phrases.
	Collection []ClassifyInput

	Headers map[string]string
}

func NewClassifyCollectionOptions(classifierID string, collection []ClassifyInput) *ClassifyCollectionOptions {
	return &ClassifyCollectionOptions{
		ClassifierID: textapi.StringPtr(classifierID),
		Collection:   collection,
	}
}

func (o *ClassifyCollectionOptions) SetClassifierID(classifierID string) *ClassifyCollectionOptions {
	o.ClassifierID = textapi.StringPtr(classifierID)
	return o
}

func (o *ClassifyCollectionOptions) SetCollection(collection []ClassifyInput) *ClassifyCollectionOptions {
	o.Collection = collection
	return o
}

func (o *ClassifyCollectionOptions) SetHeaders(headers map[string]string) *ClassifyCollectionOptions {
	o.Headers = headers
	return o
}

func (o *ClassifyCollectionOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	p.SetString("classifierId", o.ClassifierID)
	if o.Collection != nil {
		p.Set("collection", o.Collection)
	}
	return p.SetHeaders(o.Headers)
}

// CreateClassifierOptions : The CreateClassifier options.
type CreateClassifierOptions struct {
	// Metadata in JSON format. The metadata identifies the language of the
	// data, and an optional name to identify the classifier. See
	// TrainingMetadata.
	TrainingMetadata io.Reader

	// Training data in CSV format. Each text value must have at least one
	// class. See TrainingDataCSV.
	TrainingData io.Reader

	Headers map[string]string
}

func NewCreateClassifierOptions(trainingMetadata io.Reader, trainingData io.Reader) *CreateClassifierOptions {
	return &CreateClassifierOptions{
		TrainingMetadata: trainingMetadata,
		TrainingData:     trainingData,
	}
}

func (o *CreateClassifierOptions) SetTrainingMetadata(trainingMetadata io.Reader) *CreateClassifierOptions {
	o.TrainingMetadata = trainingMetadata
	return o
}

func (o *CreateClassifierOptions) SetTrainingData(trainingData io.Reader) *CreateClassifierOptions {
	o.TrainingData = trainingData
	return o
}

func (o *CreateClassifierOptions) SetHeaders(headers map[string]string) *CreateClassifierOptions {
	o.Headers = headers
	return o
}

func (o *CreateClassifierOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	if o.TrainingMetadata != nil {
		p.Set("trainingMetadata", o.TrainingMetadata)
	}
	if o.TrainingData != nil {
		p.Set("trainingData", o.TrainingData)
	}
	return p.SetHeaders(o.Headers)
}

// ListClassifiersOptions : The ListClassifiers options. A nil value is
// allowed.
type ListClassifiersOptions struct {
	Headers map[string]string
}

func NewListClassifiersOptions() *ListClassifiersOptions {
	return &ListClassifiersOptions{}
}

func (o *ListClassifiersOptions) SetHeaders(headers map[string]string) *ListClassifiersOptions {
	o.Headers = headers
	return o
}

func (o *ListClassifiersOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	return p.SetHeaders(o.Headers)
}

// GetClassifierOptions : The GetClassifier options.
type GetClassifierOptions struct {
	ClassifierID *string

	Headers map[string]string
}

func NewGetClassifierOptions(classifierID string) *GetClassifierOptions {
	return &GetClassifierOptions{
		ClassifierID: textapi.StringPtr(classifierID),
	}
}

func (o *GetClassifierOptions) SetClassifierID(classifierID string) *GetClassifierOptions {
	o.ClassifierID = textapi.StringPtr(classifierID)
	return o
}

func (o *GetClassifierOptions) SetHeaders(headers map[string]string) *GetClassifierOptions {
	o.Headers = headers
	return o
}

func (o *GetClassifierOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	return p.SetString("classifierId", o.ClassifierID).SetHeaders(o.Headers)
}

// DeleteClassifierOptions : The DeleteClassifier options.
type DeleteClassifierOptions struct {
	ClassifierID *string

	Headers map[string]string
}

func NewDeleteClassifierOptions(classifierID string) *DeleteClassifierOptions {
	return &DeleteClassifierOptions{
		ClassifierID: textapi.StringPtr(classifierID),
	}
}

func (o *DeleteClassifierOptions) SetClassifierID(classifierID string) *DeleteClassifierOptions {
	o.ClassifierID = textapi.StringPtr(classifierID)
	return o
}

func (o *DeleteClassifierOptions) SetHeaders(headers map[string]string) *DeleteClassifierOptions {
	o.Headers = headers
	return o
}

func (o *DeleteClassifierOptions) params() *textapi.Params {
	p := textapi.NewParams()
	if o == nil {
		return p
	}
	return p.SetString("classifierId", o.ClassifierID).SetHeaders(o.Headers)
}
