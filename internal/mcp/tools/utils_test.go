package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

func TestIntArg(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"absent", nil, 20, false},
		{"json number", float64(5), 5, false},
		{"numeric string", " 7 ", 7, false},
		{"empty string uses default", "", 20, false},
		{"zero survives", "0", 0, false},
		{"negative survives", float64(-1), -1, false},
		{"json.Number", json.Number("12"), 12, false},
		{"fraction", 2.5, 0, true},
		{"word", "ten", 0, true},
		{"bool", true, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := map[string]any{}
			if tc.value != nil {
				args["limit"] = tc.value
			}
			got, err := intArg(args, "limit", 20)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOptionalIntArgKeepsExplicitZero(t *testing.T) {
	got, err := optionalIntArg(map[string]any{"cited_gt": "0"}, "cited_gt")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)

	got, err = optionalIntArg(map[string]any{}, "cited_gt")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestYesNoArg(t *testing.T) {
	for value, want := range map[any]bool{"yes": true, "YES": true, "no": false, "": false, true: true, "true": true} {
		got, err := yesNoArg(map[string]any{"include_text": value}, "include_text")
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", value)
	}
	_, err := yesNoArg(map[string]any{"include_text": "maybe"}, "include_text")
	assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
}

func TestStringArg(t *testing.T) {
	args := map[string]any{"a": "  x ", "n": float64(410), "missing": nil}
	assert.Equal(t, "x", stringArg(args, "a"))
	assert.Equal(t, "410", stringArg(args, "n"))
	assert.Equal(t, "", stringArg(args, "missing"))
}
