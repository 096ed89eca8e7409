package langid

import (
	"testing"

	app_errors "lingo-gate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCode tests ISO 639-1 code parsing
func TestParseCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain code", "en", "en", false},
		{"upper case", "EN", "en", false},
		{"regional subtag", "en-US", "en", false},
		{"chinese", "zh", "zh", false},
		{"japanese", "ja", "ja", false},
		{"unknown code", "xx", "", true},
		{"region not language", "jp", "", true},
		{"empty", "", "", true},
		{"garbage", "not a code", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				apiErr := app_errors.ParseAPIError(err)
				assert.Equal(t, 400, apiErr.HTTPStatus)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, code)
			}
		})
	}
}

// TestResolveSource_Explicit tests explicit source resolution
func TestResolveSource_Explicit(t *testing.T) {
	resolver := NewResolver([]string{"en", "zh"})

	code, err := resolver.ResolveSource("zh", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "zh", code)

	code, err = resolver.ResolveSource("en-GB", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "en", code)

	_, err = resolver.ResolveSource("xx", "ignored")
	require.Error(t, err)
}

// TestResolveSource_AutoDetection tests allow-list constrained detection
func TestResolveSource_AutoDetection(t *testing.T) {
	resolver := NewResolver([]string{"en", "zh"})

	tests := []struct {
		name     string
		explicit string
		text     string
		expected string
	}{
		{"empty source detects english", "", "The quick brown fox jumps over the lazy dog", "en"},
		{"auto source detects english", "auto", "The quick brown fox jumps over the lazy dog", "en"},
		{"auto source detects chinese", "auto", "今天的天气非常好，我们去公园散步吧。", "zh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := resolver.ResolveSource(tt.explicit, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

// TestResolveSource_NoModels tests detection with an empty allow-list
func TestResolveSource_NoModels(t *testing.T) {
	resolver := NewResolver(nil)

	_, err := resolver.ResolveSource("", "some text")
	require.Error(t, err)
	apiErr := app_errors.ParseAPIError(err)
	assert.Equal(t, "LANGUAGE_DETECTION_FAILED", apiErr.Code)
}

// TestResolveSource_SingleLanguagePadding verifies that a single-language
// allow-list still rejects detections outside the allow-list.
func TestResolveSource_SingleLanguagePadding(t *testing.T) {
	resolver := NewResolver([]string{"zh"})

	// English text: the padded detector may pick English, which is not in
	// the allow-list and must fail resolution.
	_, err := resolver.ResolveSource("", "The quick brown fox jumps over the lazy dog")
	require.Error(t, err)

	code, err := resolver.ResolveSource("", "今天的天气非常好，我们去公园散步吧。")
	require.NoError(t, err)
	assert.Equal(t, "zh", code)
}

// TestResolveTarget tests target resolution
func TestResolveTarget(t *testing.T) {
	resolver := NewResolver([]string{"en", "zh"})

	code, err := resolver.ResolveTarget("zh")
	require.NoError(t, err)
	assert.Equal(t, "zh", code)

	_, err = resolver.ResolveTarget("")
	require.Error(t, err)

	_, err = resolver.ResolveTarget("xx")
	require.Error(t, err)
}

// TestAllowed tests the allow-list accessor
func TestAllowed(t *testing.T) {
	resolver := NewResolver([]string{"zh", "en", "zh"})
	assert.Equal(t, []string{"en", "zh"}, resolver.Allowed())
}

// TestDetect tests unconstrained detection
func TestDetect(t *testing.T) {
	code, err := Detect("The quick brown fox jumps over the lazy dog and keeps running through the forest")
	require.NoError(t, err)
	assert.Equal(t, "en", code)
}
