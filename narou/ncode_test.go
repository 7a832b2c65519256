package narou

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractNCode_BareCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"n1234ab", "n1234ab"},
		{"N1234AB", "n1234ab"},
		{"n98765z", "n98765z"},
		{"  n1234ab  ", "n1234ab"},
	}
	for _, c := range cases {
		got, err := ExtractNCode(c.input)
		require.NoError(t, err, c.input)
		require.Equal(t, c.want, got)
	}
}

func TestExtractNCode_Idempotent(t *testing.T) {
	for _, input := range []string{"n1234ab", "N5678C", "https://ncode.syosetu.com/n1234ab/"} {
		once, err := ExtractNCode(input)
		require.NoError(t, err)
		twice, err := ExtractNCode(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

func TestExtractNCode_FromURL(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"https://ncode.syosetu.com/n1234ab/", "n1234ab"},
		{"https://ncode.syosetu.com/n1234ab", "n1234ab"},
		{"https://ncode.syosetu.com/n1234ab/12/", "n1234ab"},
		{"https://ncode.syosetu.com/N1234AB/?p=2", "n1234ab"},
		{"https://example.com/mirror/n1234ab/5/", "n1234ab"},
		{"/n1234ab/3/", "n1234ab"},
	}
	for _, c := range cases {
		got, err := ExtractNCode(c.input)
		require.NoError(t, err, c.input)
		require.Equal(t, c.want, got)
	}
}

func TestExtractNCode_NoMatch(t *testing.T) {
	for _, input := range []string{"https://example.com/", "hello", "n12ab", "1234ab"} {
		_, err := ExtractNCode(input)
		require.Error(t, err, input)
		var resErr *ResolutionError
		require.True(t, errors.As(err, &resErr))
	}
}

func TestIndexURL(t *testing.T) {
	require.Equal(t, "https://ncode.syosetu.com/n1234ab/", IndexURL(DefaultBaseURL, "n1234ab"))
	require.Equal(t, "http://host/n1234ab/", IndexURL("http://host/", "n1234ab"))
}
