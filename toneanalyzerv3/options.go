package toneanalyzerv3

import (
	"github.com/textkit/textapi"
)

// Constants associated with the ToneOptions.ContentType property.
const (
	ToneOptionsContentTypeApplicationJSONConst = "application/json"
	ToneOptionsContentTypeTextHTMLConst        = "text/html"
	ToneOptionsContentTypeTextPlainConst       = "text/plain"
)

// Constants associated with the ToneOptions.Tones property.
const (
	ToneOptionsTonesEmotionConst  = "emotion"
	ToneOptionsTonesLanguageConst = "language"
	ToneOptionsTonesSocialConst   = "social"
)

// Constants associated with the ContentLanguage property.
const (
	ContentLanguageEnConst = "en"
	ContentLanguageFrConst = "fr"
)

// Constants associated with the AcceptLanguage property.
const (
	AcceptLanguageArConst   = "ar"
	AcceptLanguageDeConst   = "de"
	AcceptLanguageEnConst   = "en"
	AcceptLanguageEsConst   = "es"
	AcceptLanguageFrConst   = "fr"
	AcceptLanguageItConst   = "it"
	AcceptLanguageJaConst   = "ja"
	AcceptLanguageKoConst   = "ko"
	AcceptLanguagePtBrConst = "pt-br"
	AcceptLanguageZhCnConst = "zh-cn"
	AcceptLanguageZhTwConst = "zh-tw"
)

// ToneOptions : The Tone options.
//
// The content to analyze is either ToneInput, sent as JSON, or Body, sent
// as is with the declared ContentType (plain text or HTML).
type ToneOptions struct {
	ToneInput *ToneInput

	Body *string

	// The type of the input. A character encoding can be specified by
	// including a `charset` parameter, e.g. 'text/plain;charset=utf-8'.
	ContentType *string

	// Indicates whether the service is to return an analysis of each
	// individual sentence in addition to its analysis of the full document.
	Sentences *bool

	// The types of tones to analyze (emotion, language, social); all by
	// default. Only for versions before 2017-09-21.
	Tones []string

	// The language of the input text.
	ContentLanguage *string

	// The desired language of the response.
	AcceptLanguage *string

	Headers map[string]string
}

func NewToneOptions() *ToneOptions {
	return &ToneOptions{}
}

// SetToneInput sets the JSON input and its content type.
func (o *ToneOptions) SetToneInput(toneInput *ToneInput) *ToneOptions {
	o.ToneInput = toneInput
	o.ContentType = textapi.StringPtr(ToneOptionsContentTypeApplicationJSONConst)
	return o
}

// SetBody sets raw input. Set its content type with SetContentType.
func (o *ToneOptions) SetBody(body string) *ToneOptions {
	o.Body = textapi.StringPtr(body)
	return o
}

func (o *ToneOptions) SetContentType(contentType string) *ToneOptions {
	o.ContentType = textapi.StringPtr(contentType)
	return o
}

func (o *ToneOptions) SetSentences(sentences bool) *ToneOptions {
	o.Sentences = textapi.BoolPtr(sentences)
	return o
}

func (o *ToneOptions) SetTones(tones []string) *ToneOptions {
	o.Tones = tones
	return o
}

func (o *ToneOptions) SetContentLanguage(contentLanguage string) *ToneOptions {
	o.ContentLanguage = textapi.StringPtr(contentLanguage)
	return o
}

func (o *ToneOptions) SetAcceptLanguage(acceptLanguage string) *ToneOptions {
	o.AcceptLanguage = textapi.StringPtr(acceptLanguage)
	return o
}

func (o *ToneOptions) SetHeaders(headers map[string]string) *ToneOptions {
	o.Headers = headers
	return o
}

func (o *ToneOptions) params(version string) *textapi.Params {
	p := textapi.NewParams().Set("version", version)
	if o == nil {
		return p
	}
	if o.ToneInput != nil {
		p.Set("toneInput", *o.ToneInput)
	} else {
		p.SetString("toneInput", o.Body)
	}
	return p.
		SetString("contentType", o.ContentType).
		SetBool("sentences", o.Sentences).
		SetStrings("tones", o.Tones).
		SetString("contentLanguage", o.ContentLanguage).
		SetString("acceptLanguage", o.AcceptLanguage).
		SetHeaders(o.Headers)
}

// ToneChatOptions : The ToneChat options.
type ToneChatOptions struct {
	// An array of Utterance objects that provides the input content that
	// the service is to analyze.
	Utterances []Utterance

	ContentLanguage *string

	AcceptLanguage *string

	Headers map[string]string
}

func NewToneChatOptions(utterances []Utterance) *ToneChatOptions {
	return &ToneChatOptions{
		Utterances: utterances,
	}
}

func (o *ToneChatOptions) SetUtterances(utterances []Utterance) *ToneChatOptions {
	o.Utterances = utterances
	return o
}

func (o *ToneChatOptions) SetContentLanguage(contentLanguage string) *ToneChatOptions {
	o.ContentLanguage = textapi.StringPtr(contentLanguage)
	return o
}

func (o *ToneChatOptions) SetAcceptLanguage(acceptLanguage string) *ToneChatOptions {
	o.AcceptLanguage = textapi.StringPtr(acceptLanguage)
	return o
}

func (o *ToneChatOptions) SetHeaders(headers map[string]string) *ToneChatOptions {
	o.Headers = headers
	return o
}

func (o *ToneChatOptions) params(version string) *textapi.Params {
	p := textapi.NewParams().Set("version", version)
	if o == nil {
		return p
	}
	if o.Utterances != nil {
		p.Set("utterances", o.Utterances)
	}
	return p.
		SetString("contentLanguage", o.ContentLanguage).
		SetString("acceptLanguage", o.AcceptLanguage).
		SetHeaders(o.Headers)
}
