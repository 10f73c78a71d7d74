package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/textkit/textapi"
	"github.com/textkit/textapi/closingclient"
	"github.com/textkit/textapi/debugclient"
	"github.com/textkit/textapi/metricsclient"
	"github.com/textkit/textapi/naturallanguageclassifierv1"
	"github.com/textkit/textapi/toneanalyzerv3"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "textapi",
		Usage:   "Call text analysis services and generate their API descriptions",
		Version: version,

		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log requests as curl commands and dump responses",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write client metrics in Prometheus text format to this file",
			},
		},

		Commands: []*cli.Command{
			{
				Name:  "gen",
				Usage: "Write openapi.json and operations.yaml",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output directory",
						Value: "api",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Title of the OpenAPI document",
						Value: "Text analysis services",
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					return generate(cmd.String("out"), cmd.String("title"))
				},
			},

			{
				Name:      "classify",
				Usage:     "Classify a phrase",
				ArgsUsage: "<text>",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "classifier",
						Usage:    "Classifier ID",
						Required: true,
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					text, err := inputText(cmd)
					if err != nil {
						return err
					}
					s, err := newSession(cmd)
					if err != nil {
						return err
					}
					nlc, err := s.classifier()
					if err != nil {
						return err
					}
					defer s.close(nlc)
					res, err := nlc.Classify(ctx, naturallanguageclassifierv1.NewClassifyOptions(cmd.String("classifier"), text))
					if err != nil {
						return err
					}
					return printJSON(os.Stdout, res)
				},
			},

			{
				Name:  "classifiers",
				Usage: "List classifiers",

				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := newSession(cmd)
					if err != nil {
						return err
					}
					nlc, err := s.classifier()
					if err != nil {
						return err
					}
					defer s.close(nlc)
					res, err := nlc.ListClassifiers(ctx, nil)
					if err != nil {
						return err
					}
					return printJSON(os.Stdout, res)
				},
			},

			{
				Name:      "tone",
				Usage:     "Analyze the tone of a text, read from arguments or stdin",
				ArgsUsage: "[text]",

				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "api-version",
						Usage: "API version date",
						Value: "2017-09-21",
					},
					&cli.StringFlag{
						Name:  "content-type",
						Usage: "Type of the input: text/plain or text/html",
						Value: toneanalyzerv3.ToneOptionsContentTypeTextPlainConst,
					},
					&cli.BoolFlag{
						Name:  "sentences",
						Usage: "Analyze each sentence",
						Value: true,
					},
					&cli.StringSliceFlag{
						Name:  "tones",
						Usage: "Tones to analyze (emotion, language, social)",
					},
				},

				Action: func(ctx context.Context, cmd *cli.Command) error {
					text, err := inputText(cmd)
					if err != nil {
						return err
					}
					s, err := newSession(cmd)
					if err != nil {
						return err
					}
					ta, err := toneanalyzerv3.NewToneAnalyzerV3UsingExternalConfig("", &toneanalyzerv3.ToneAnalyzerV3Options{
						Version:       cmd.String("api-version"),
						Logger:        s.logger,
						ClientOptions: s.options,
					})
					if err != nil {
						return err
					}
					defer s.close(ta)

					options := toneanalyzerv3.NewToneOptions().
						SetBody(text).
						SetContentType(cmd.String("content-type")).
						SetSentences(cmd.Bool("sentences"))
					if tones := cmd.StringSlice("tones"); len(tones) != 0 {
						options.SetTones(tones)
					}
					res, err := ta.Tone(ctx, options)
					if err != nil {
						return err
					}
					return printJSON(os.Stdout, res)
				},
			},
		},
	}
}

// session holds what service clients of one command share: the logger,
// the HTTP client chain and the metrics registry.
type session struct {
	logger  *zap.Logger
	options []textapi.Option

	registry    *prometheus.Registry
	metricsFile string
}

// newSession builds the HTTP client of service clients. Requests in flight
// are cancelled when the service is closed.
func newSession(cmd *cli.Command) (*session, error) {
	s := &session{
		logger:      zap.NewNop(),
		metricsFile: cmd.String("metrics-file"),
	}
	var client closingclient.HttpClient = &http.Client{}
	if cmd.Bool("verbose") {
		if dev, err := zap.NewDevelopment(); err == nil {
			s.logger = dev
		}
		client = debugclient.New(client, s.logger)
	}
	if s.metricsFile != "" {
		s.registry = prometheus.NewRegistry()
		mc, err := metricsclient.New(client, s.registry, "textapi")
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		client = mc
	}
	s.options = []textapi.Option{textapi.CustomClient(closingclient.New(client, s.logger))}
	return s, nil
}

func (s *session) classifier() (*naturallanguageclassifierv1.NaturalLanguageClassifierV1, error) {
	return naturallanguageclassifierv1.NewNaturalLanguageClassifierV1UsingExternalConfig("", &naturallanguageclassifierv1.NaturalLanguageClassifierV1Options{
		Logger:        s.logger,
		ClientOptions: s.options,
	})
}

func (s *session) close(service io.Closer) {
	if err := service.Close(); err != nil {
		s.logger.Warn("failed to close service client", zap.Error(err))
	}
	if s.registry != nil {
		if err := prometheus.WriteToTextfile(s.metricsFile, s.registry); err != nil {
			s.logger.Error("failed to write metrics", zap.String("file", s.metricsFile), zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

func inputText(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 0 {
		return strings.Join(cmd.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text")
	}
	return text, nil
}

func printJSON(w io.Writer, res *textapi.DetailedResponse) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, res.Result, "", "  "); err != nil {
		// Not JSON, print as is.
		_, err := w.Write(res.Result)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func generate(outDir, title string) error {
	var ops []*textapi.Operation
	ops = append(ops, naturallanguageclassifierv1.Operations()...)
	ops = append(ops, toneanalyzerv3.Operations()...)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	doc := textapi.OpenAPI(title, version, ops)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "openapi.json"), append(data, '\n'), 0o644); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, "operations.yaml"))
	if err != nil {
		return err
	}
	if err := textapi.WriteCatalog(f, ops); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
