package toneanalyzerv3

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/textkit/textapi"
	apierrors "github.com/textkit/textapi/errors"
	"github.com/textkit/textapi/textapitest"
)

const testVersion = "2018-10-18"

func newRecordedService(t *testing.T) (*ToneAnalyzerV3, *textapitest.Recorder) {
	recorder := &textapitest.Recorder{}
	ta, err := NewToneAnalyzerV3(&ToneAnalyzerV3Options{
		Authenticator: &textapi.NoAuthAuthenticator{},
		Version:       testVersion,
		Transport:     recorder,
		Logger:        zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return ta, recorder
}

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "valid", version: "2017-09-21"},
		{name: "no version", version: "", wantErr: true},
		{name: "malformed version", version: "21.09.2017", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta, err := NewToneAnalyzerV3(&ToneAnalyzerV3Options{
				Authenticator: &textapi.NoAuthAuthenticator{},
				Version:       tc.version,
			})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, DefaultServiceURL, ta.Service.URL())
			require.Equal(t, tc.version, ta.Version)
		})
	}
}

func TestTone(t *testing.T) {
	ctx := context.Background()
	ta, recorder := newRecordedService(t)

	options := NewToneOptions().
		SetBody("text").
		SetContentType(ToneOptionsContentTypeTextPlainConst).
		SetSentences(false).
		SetTones([]string{ToneOptionsTonesEmotionConst, ToneOptionsTonesSocialConst}).
		SetContentLanguage(ContentLanguageEnConst).
		SetAcceptLanguage(AcceptLanguageFrConst)
	_, err := ta.Tone(ctx, options)
	require.NoError(t, err)

	requests := recorder.Requests()
	require.Len(t, requests, 1)
	req := requests[0]
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/v3/tone", req.Path)
	require.Equal(t, "text", req.Body)
	wantQuery := map[string]interface{}{
		"sentences": false,
		"tones":     []string{"emotion", "social"},
		"version":   testVersion,
	}
	if diff := cmp.Diff(wantQuery, req.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	require.Equal(t, "en", req.Header.Get("Content-Language"))
	require.Equal(t, "fr", req.Header.Get("Accept-Language"))
	require.Equal(t, "application/json", req.Header.Get("Accept"))
	require.Equal(t, "service_name=tone_analyzer;service_version=V3;operation_id=tone", req.Header.Get("X-IBMCloud-SDK-Analytics"))
}

func TestToneRawBodyIsNotWrapped(t *testing.T) {
	ctx := context.Background()
	ta, recorder := newRecordedService(t)

	_, err := ta.Tone(ctx, NewToneOptions().SetBody("text").SetSentences(false))
	require.NoError(t, err)

	req := recorder.Last()
	require.Equal(t, "text", req.Body)
	require.Equal(t, map[string]interface{}{"sentences": false, "version": testVersion}, req.Query)
	require.Empty(t, req.Header.Get("Content-Type"))
}

func TestToneInput(t *testing.T) {
	ctx := context.Background()
	ta, recorder := newRecordedService(t)

	_, err := ta.Tone(ctx, NewToneOptions().SetToneInput(&ToneInput{Text: "I am happy"}))
	require.NoError(t, err)

	req := recorder.Last()
	require.Equal(t, ToneInput{Text: "I am happy"}, req.Body)
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestToneMissingInput(t *testing.T) {
	ctx := context.Background()
	ta, recorder := newRecordedService(t)

	_, err := ta.Tone(ctx, NewToneOptions().SetSentences(true))
	var missingErr *apierrors.MissingParametersError
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, []string{"toneInput"}, missingErr.Params)

	_, err = ta.ToneAsync(ctx, nil).Wait(ctx)
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, []string{"toneInput"}, missingErr.Params)

	require.Empty(t, recorder.Requests())
}

func TestUserHeadersWinOnEveryOperation(t *testing.T) {
	ctx := context.Background()
	headers := map[string]string{
		"Accept":       "fake/accept",
		"Content-Type": "fake/header",
	}

	cases := []struct {
		name string
		call func(ta *ToneAnalyzerV3) error
	}{
		{
			name: "tone with json input",
			call: func(ta *ToneAnalyzerV3) error {
				_, err := ta.Tone(ctx, NewToneOptions().SetToneInput(&ToneInput{Text: "hi"}).SetHeaders(headers))
				return err
			},
		},
		{
			name: "tone with raw input",
			call: func(ta *ToneAnalyzerV3) error {
				options := NewToneOptions().
					SetBody("hi").
					SetContentType(ToneOptionsContentTypeTextPlainConst).
					SetHeaders(headers)
				_, err := ta.Tone(ctx, options)
				return err
			},
		},
		{
			name: "toneChat",
			call: func(ta *ToneAnalyzerV3) error {
				_, err := ta.ToneChat(ctx, NewToneChatOptions([]Utterance{{Text: "hi"}}).SetHeaders(headers))
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ta, recorder := newRecordedService(t)
			require.NoError(t, tc.call(ta))

			req := recorder.Last()
			require.Equal(t, "fake/accept", req.Header.Get("Accept"))
			require.Equal(t, "fake/header", req.Header.Get("Content-Type"))
			require.Equal(t, map[string]interface{}{"version": testVersion}, req.Query)
		})
	}
}

func TestToneChat(t *testing.T) {
	ctx := context.Background()
	ta, recorder := newRecordedService(t)

	utterances := []Utterance{
		{Text: "Hello, I'm having a problem with your product.", User: "customer"},
		{Text: "OK, let me know what's going on, please.", User: "agent"},
	}
	options := NewToneChatOptions(utterances).SetAcceptLanguage(AcceptLanguageEnConst)
	_, err := ta.ToneChat(ctx, options)
	require.NoError(t, err)

	req := recorder.Last()
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/v3/tone_chat", req.Path)
	require.Equal(t, map[string]interface{}{"utterances": utterances}, req.Body)
	require.Equal(t, map[string]interface{}{"version": testVersion}, req.Query)
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	require.Equal(t, "en", req.Header.Get("Accept-Language"))
	require.Empty(t, req.Header.Get("Content-Language"))

	_, err = ta.ToneChat(ctx, &ToneChatOptions{})
	var missingErr *apierrors.MissingParametersError
	require.True(t, errors.As(err, &missingErr))
	require.Equal(t, []string{"utterances"}, missingErr.Params)
	require.Len(t, recorder.Requests(), 1)
}

func TestOverHTTP(t *testing.T) {
	ctx := context.Background()
	server := textapitest.NewServer(zaptest.NewLogger(t), Operations())
	t.Cleanup(server.Close)

	bearer, err := textapi.NewBearerTokenAuthenticator("secret")
	require.NoError(t, err)
	ta, err := NewToneAnalyzerV3(&ToneAnalyzerV3Options{
		URL:           server.URL,
		Authenticator: bearer,
		Version:       testVersion,
		Logger:        zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ta.Close() })

	want := ToneAnalysis{
		DocumentTone: DocumentAnalysis{
			Tones: []ToneScore{{Score: 0.6, ToneID: "joy", ToneName: "Joy"}},
		},
	}
	server.Reply("tone", http.StatusOK, want)

	options := NewToneOptions().
		SetBody("Team, I know that times are tough!").
		SetContentType(ToneOptionsContentTypeTextPlainConst).
		SetSentences(false).
		SetTones([]string{"emotion", "language"})
	var got ToneAnalysis
	done := make(chan struct{})
	ta.ToneAsync(ctx, options).Then(func(res *textapi.DetailedResponse, err error) {
		defer close(done)
		if err != nil {
			t.Errorf("tone failed: %v", err)
			return
		}
		if err := res.Unmarshal(&got); err != nil {
			t.Errorf("failed to decode: %v", err)
		}
	})
	<-done
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}

	calls := server.Calls()
	require.Len(t, calls, 1)
	call := calls[0]
	require.Equal(t, "Team, I know that times are tough!", string(call.Body))
	require.Equal(t, "false", call.Query.Get("sentences"))
	require.Equal(t, "emotion,language", call.Query.Get("tones"))
	require.Equal(t, testVersion, call.Query.Get("version"))
	require.Equal(t, "text/plain", call.Header.Get("Content-Type"))
	require.Equal(t, "Bearer secret", call.Header.Get("Authorization"))

	server.Reply("toneChat", http.StatusBadRequest, map[string]interface{}{
		"code":  400,
		"error": "Invalid JSON input",
	})
	_, err = ta.ToneChat(ctx, NewToneChatOptions([]Utterance{{Text: "hi"}}))
	var serviceErr *apierrors.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	require.Equal(t, "Invalid JSON input", serviceErr.Message)
	require.Equal(t, http.StatusBadRequest, serviceErr.HttpCode())
}
