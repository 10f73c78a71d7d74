package toneanalyzerv3

// ToneInput : Input for the general-purpose endpoint.
type ToneInput struct {
	// The input content that the service is to analyze.
	Text string `json:"text"`
}

// Utterance : An utterance for the input of the customer-engagement
// endpoint.
type Utterance struct {
	// An utterance contributed by a user in the conversation.
	Text string `json:"text"`

	// A string that identifies the user who contributed the utterance.
	User string `json:"user,omitempty"`
}

// ToneScore : The score for a tone from the input content.
type ToneScore struct {
	Score    float64 `json:"score"`
	ToneID   string  `json:"tone_id"`
	ToneName string  `json:"tone_name"`
}

// ToneCategory : The category for a tone from the input content.
type ToneCategory struct {
	Tones        []ToneScore `json:"tones"`
	CategoryID   string      `json:"category_id"`
	CategoryName string      `json:"category_name"`
}

// DocumentAnalysis : The results of the analysis for the full input content.
type DocumentAnalysis struct {
	Tones          []ToneScore    `json:"tones,omitempty"`
	ToneCategories []ToneCategory `json:"tone_categories,omitempty"`
	Warning        string         `json:"warning,omitempty"`
}

// SentenceAnalysis : The results of the analysis for one sentence.
type SentenceAnalysis struct {
	SentenceID     int64          `json:"sentence_id"`
	Text           string         `json:"text"`
	Tones          []ToneScore    `json:"tones,omitempty"`
	ToneCategories []ToneCategory `json:"tone_categories,omitempty"`
	InputFrom      int64          `json:"input_from,omitempty"`
	InputTo        int64          `json:"input_to,omitempty"`
}

// ToneAnalysis : The tone analysis results for the input from the
// general-purpose endpoint.
type ToneAnalysis struct {
	DocumentTone DocumentAnalysis `json:"document_tone"`

	// Returned only if sentences were requested and the input has more than
	// one sentence.
	SentencesTone []SentenceAnalysis `json:"sentences_tone,omitempty"`

	Warning string `json:"warning,omitempty"`
}

// ToneChatScore : The score for an utterance from the input content.
type ToneChatScore struct {
	Score    float64 `json:"score"`
	ToneID   string  `json:"tone_id"`
	ToneName string  `json:"tone_name"`
}

// UtteranceAnalysis : The results of the analysis for an utterance.
type UtteranceAnalysis struct {
	UtteranceID   int64           `json:"utterance_id"`
	UtteranceText string          `json:"utterance_text"`
	Tones         []ToneChatScore `json:"tones"`
	Error         string          `json:"error,omitempty"`
}

// UtteranceAnalyses : The results of the analysis for the utterances of the
// input content.
type UtteranceAnalyses struct {
	UtterancesTone []UtteranceAnalysis `json:"utterances_tone"`
	Warning        string              `json:"warning,omitempty"`
}
