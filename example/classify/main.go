// Command classify trains a classifier on a tiny data set, waits until it
// is available and classifies a phrase. Credentials are read from
// NATURAL_LANGUAGE_CLASSIFIER_* environment variables or ibm-credentials.env.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/textkit/textapi"
	nlc "github.com/textkit/textapi/naturallanguageclassifierv1"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	service, err := nlc.NewNaturalLanguageClassifierV1UsingExternalConfig("", &nlc.NaturalLanguageClassifierV1Options{
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to create client", zap.Error(err))
	}
	defer service.Close()

	metadata, err := nlc.TrainingMetadata{Language: "en", Name: "weather"}.Reader()
	if err != nil {
		logger.Fatal("failed to encode metadata", zap.Error(err))
	}
	data, err := nlc.TrainingDataCSV([]nlc.TrainingExample{
		{Text: "How hot will it be today?", Classes: []string{"temperature"}},
		{Text: "Is it hot outside?", Classes: []string{"temperature"}},
		{Text: "Will it rain tomorrow?", Classes: []string{"conditions"}},
		{Text: "Is it windy?", Classes: []string{"conditions"}},
	})
	if err != nil {
		logger.Fatal("failed to encode training data", zap.Error(err))
	}

	res, err := service.CreateClassifier(ctx, nlc.NewCreateClassifierOptions(metadata, data))
	if err != nil {
		logger.Fatal("failed to create classifier", zap.Error(err))
	}
	var classifier nlc.Classifier
	if err := res.Unmarshal(&classifier); err != nil {
		logger.Fatal("bad response", zap.Error(err))
	}
	logger.Info("created classifier", zap.String("classifier_id", classifier.ClassifierID))

	for classifier.Status != nlc.ClassifierStatusAvailable {
		if classifier.Status == nlc.ClassifierStatusFailed {
			logger.Fatal("training failed", zap.String("description", classifier.StatusDescription))
		}
		time.Sleep(10 * time.Second)
		res, err := service.GetClassifier(ctx, nlc.NewGetClassifierOptions(classifier.ClassifierID))
		if err != nil {
			logger.Fatal("failed to get classifier", zap.Error(err))
		}
		if err := res.Unmarshal(&classifier); err != nil {
			logger.Fatal("bad response", zap.Error(err))
		}
	}

	// Classify asynchronously and wait for the callback.
	done := service.ClassifyAsync(ctx, nlc.NewClassifyOptions(classifier.ClassifierID, "How hot is it?")).
		Then(func(res *textapi.DetailedResponse, err error) {
			if err != nil {
				logger.Error("classification failed", zap.Error(err))
				return
			}
			var classification nlc.Classification
			if err := res.Unmarshal(&classification); err != nil {
				logger.Error("bad response", zap.Error(err))
				return
			}
			fmt.Printf("%q is about %s\n", classification.Text, classification.TopClass)
		})
	<-done

	if _, err := service.DeleteClassifier(ctx, nlc.NewDeleteClassifierOptions(classifier.ClassifierID)); err != nil {
		logger.Error("failed to delete classifier", zap.Error(err))
	}
}
