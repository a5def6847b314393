package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOptions struct {
	Filename string   `mapstructure:"filename"`
	Exclude  []string `mapstructure:"exclude"`
	Enabled  *bool    `mapstructure:"enabled"`
}

func TestDecodeOptions(t *testing.T) {
	var opts sampleOptions
	require.NoError(t, DecodeOptions(map[string]any{
		"filename": "map.xml",
		"exclude":  []any{"/drafts", "/private"},
		"enabled":  false,
	}, &opts))

	assert.Equal(t, "map.xml", opts.Filename)
	assert.Equal(t, []string{"/drafts", "/private"}, opts.Exclude)
	require.NotNil(t, opts.Enabled)
	assert.False(t, *opts.Enabled)
}

func TestDecodeOptions_CommaSeparatedList(t *testing.T) {
	var opts sampleOptions
	require.NoError(t, DecodeOptions(map[string]any{"exclude": "/a,/b"}, &opts))
	assert.Equal(t, []string{"/a", "/b"}, opts.Exclude)
}

func TestDecodeOptions_Empty(t *testing.T) {
	var opts sampleOptions
	require.NoError(t, DecodeOptions(nil, &opts))
	assert.Nil(t, opts.Enabled)
}

func TestDecodeOptions_Rejects(t *testing.T) {
	var opts sampleOptions
	err := DecodeOptions(map[string]any{"filname": "typo.xml"}, &opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filname")

	err = DecodeOptions(map[string]any{"filename": []any{"a"}}, &opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
}
