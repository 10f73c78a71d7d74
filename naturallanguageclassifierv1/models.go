package naturallanguageclassifierv1

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ClassifyInput : Request payload to classify.
type ClassifyInput struct {
	// The submitted phrase. The maximum length is 2048 characters.
	Text string `json:"text"`
}

// ClassifiedClass : Class and confidence.
type ClassifiedClass struct {
	Confidence float64 `json:"confidence,omitempty"`
	ClassName  string  `json:"class_name,omitempty"`
}

// Classification : Response from the classifier for a phrase.
type Classification struct {
	ClassifierID string            `json:"classifier_id,omitempty"`
	URL          string            `json:"url,omitempty"`
	Text         string            `json:"text,omitempty"`
	TopClass     string            `json:"top_class,omitempty"`
	Classes      []ClassifiedClass `json:"classes,omitempty"`
}

// CollectionItem : Response from the classifier for a phrase in a collection.
type CollectionItem struct {
	Text     string            `json:"text,omitempty"`
	TopClass string            `json:"top_class,omitempty"`
	Classes  []ClassifiedClass `json:"classes,omitempty"`
}

// ClassificationCollection : Response from the classifier for multiple phrases.
type ClassificationCollection struct {
	ClassifierID string           `json:"classifier_id,omitempty"`
	URL          string           `json:"url,omitempty"`
	Collection   []CollectionItem `json:"collection,omitempty"`
}

// Classifier : A classifier for natural language phrases.
type Classifier struct {
	Name              string     `json:"name,omitempty"`
	URL               string     `json:"url"`
	Status            string     `json:"status,omitempty"`
	ClassifierID      string     `json:"classifier_id"`
	Created           *time.Time `json:"created,omitempty"`
	StatusDescription string     `json:"status_description,omitempty"`
	Language          string     `json:"language,omitempty"`
}

// Constants associated with the Classifier.Status property.
const (
	ClassifierStatusAvailable   = "Available"
	ClassifierStatusFailed      = "Failed"
	ClassifierStatusNonExistent = "Non Existent"
	ClassifierStatusTraining    = "Training"
	ClassifierStatusUnavailable = "Unavailable"
)

// ClassifierList : List of available classifiers.
type ClassifierList struct {
	Classifiers []Classifier `json:"classifiers"`
}

// TrainingMetadata is the content of the training_metadata part.
type TrainingMetadata struct {
	Language string `json:"language"`
	Name     string `json:"name,omitempty"`
}

// Reader returns the metadata as JSON, ready for CreateClassifierOptions.
func (m TrainingMetadata) Reader() (io.Reader, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// TrainingExample is a phrase with its classes.
type TrainingExample struct {
	Text    string
	Classes []string
}

// TrainingDataCSV renders examples in the training CSV format: one row per
// example, the phrase followed by its classes.
func TrainingDataCSV(examples []TrainingExample) (io.Reader, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.UseCRLF = true

	for i, example := range examples {
		if len(example.Classes) == 0 {
			return nil, fmt.Errorf("example %d (%q) has no class", i, example.Text)
		}
		record := append([]string{example.Text}, example.Classes...)
		if err := csvWriter.Write(record); err != nil {
			return nil, err
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, err
	}
	return &buf, nil
}
