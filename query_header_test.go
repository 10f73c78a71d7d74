package textapi

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// CustomType is an integer encoded as a number of "|".
type CustomType int

func (c CustomType) MarshalText() (text []byte, err error) {
	return bytes.Repeat([]byte("|"), int(c)), nil
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value interface{}
		want  string
	}{
		{value: "foo 12\n3", want: "foo 12\n3"},
		{value: false, want: "false"},
		{value: true, want: "true"},
		{value: 100, want: "100"},
		{value: []string{"emotion", "social"}, want: "emotion,social"},
		{value: []string{}, want: ""},
		{value: CustomType(3), want: "|||"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, formatValue(tc.value), "%#v", tc.value)
	}
}

func TestEncodeQuery(t *testing.T) {
	values := encodeQuery(map[string]interface{}{
		"sentences": false,
		"tones":     []string{"emotion", "language"},
		"version":   "2017-09-21",
	})
	require.Equal(t, url.Values{
		"sentences": {"false"},
		"tones":     {"emotion,language"},
		"version":   {"2017-09-21"},
	}, values)
	require.Equal(t, "sentences=false&tones=emotion%2Clanguage&version=2017-09-21", values.Encode())
}
