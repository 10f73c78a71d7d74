package textapi

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// ServiceOptions configure a BaseService.
type ServiceOptions struct {
	// URL of the service, e.g.
	// https://api.us-south.tone-analyzer.watson.cloud.ibm.com.
	URL string `validate:"required,url"`

	Authenticator Authenticator `validate:"required"`

	// Transport replaces the HTTP transport, e.g. in tests.
	Transport Transport

	Logger *zap.Logger

	// ClientOptions are passed to NewHTTPTransport.
	ClientOptions []Option
}

// BaseService connects operations of a service to a transport.
// It is safe for concurrent use.
type BaseService struct {
	url       string
	transport Transport
	logger    *zap.Logger
}

func NewBaseService(opts *ServiceOptions) (*BaseService, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid service options: %w", err)
	}
	if err := opts.Authenticator.Validate(); err != nil {
		return nil, fmt.Errorf("invalid authenticator: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := opts.Transport
	if transport == nil {
		clientOpts := append([]Option{WithLogger(logger)}, opts.ClientOptions...)
		transport = NewHTTPTransport(opts.URL, opts.Authenticator, clientOpts...)
	}

	return &BaseService{
		url:       opts.URL,
		transport: transport,
		logger:    logger,
	}, nil
}

// NewServiceOptionsFromEnvironment fills URL and Authenticator which are
// not set in opts from external configuration of serviceName.
// defaultURL is used if the configuration has no URL either.
func NewServiceOptionsFromEnvironment(serviceName, defaultURL string, opts *ServiceOptions) (*ServiceOptions, error) {
	filled := ServiceOptions{}
	if opts != nil {
		filled = *opts
	}
	props, err := GetServiceProperties(serviceName)
	if err != nil {
		return nil, err
	}
	if filled.URL == "" {
		filled.URL = props[PropURL]
	}
	if filled.URL == "" {
		filled.URL = defaultURL
	}
	if filled.Authenticator == nil {
		filled.Authenticator, err = NewAuthenticatorFromProperties(props)
		if err != nil {
			return nil, fmt.Errorf("failed to configure authentication of %s: %w", serviceName, err)
		}
	}
	return &filled, nil
}

func (s *BaseService) URL() string {
	return s.url
}

// Request calls the operation and waits for the result. If required
// parameters are missing, it fails without calling the transport.
func (s *BaseService) Request(ctx context.Context, op *Operation, p *Params) (*DetailedResponse, error) {
	req, err := s.build(op, p)
	if err != nil {
		return nil, err
	}
	return s.transport.Do(ctx, req)
}

// RequestAsync calls the operation in background. Failures to build the
// request are reported through the returned future, like transport errors.
func (s *BaseService) RequestAsync(ctx context.Context, op *Operation, p *Params) *Future {
	req, err := s.build(op, p)
	if err != nil {
		return Rejected(err)
	}
	return Go(func() (*DetailedResponse, error) {
		return s.transport.Do(ctx, req)
	})
}

func (s *BaseService) build(op *Operation, p *Params) (*Request, error) {
	req, err := op.Build(p)
	if err != nil {
		s.logger.Debug("rejected call", zap.String("operation", op.Name), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("calling operation",
		zap.String("operation", op.Name),
		zap.String("method", req.Method),
		zap.String("path", req.Path),
	)
	return req, nil
}

// Close releases the transport if it holds resources.
func (s *BaseService) Close() error {
	if closer, ok := s.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
