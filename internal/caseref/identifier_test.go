package caseref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		kind      Kind
		opinionID int
		clusterID int
		caseName  string
	}{
		{name: "digits", raw: "108713", kind: KindID, opinionID: 108713},
		{name: "padded digits", raw: "  42 ", kind: KindID, opinionID: 42},
		{name: "site page", raw: "https://www.courtlistener.com/opinion/108713/roe-v-wade/", kind: KindURL, clusterID: 108713},
		{name: "site page without scheme", raw: "www.courtlistener.com/opinion/2812209/obergefell-v-hodges/", kind: KindURL, clusterID: 2812209},
		{name: "relative site page", raw: "/opinion/99/x/", kind: KindURL, clusterID: 99},
		{name: "api opinion", raw: "https://www.courtlistener.com/api/rest/v4/opinions/555/", kind: KindURL, opinionID: 555},
		{name: "api cluster", raw: "https://www.courtlistener.com/api/rest/v4/clusters/777/", kind: KindURL, clusterID: 777},
		{name: "case name", raw: "Bush v. Gore", kind: KindName, caseName: "Bush v. Gore"},
		{name: "citation text", raw: "410 U.S. 113", kind: KindName, caseName: "410 U.S. 113"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, id.Kind)
			assert.Equal(t, tt.opinionID, id.OpinionID)
			assert.Equal(t, tt.clusterID, id.ClusterID)
			assert.Equal(t, tt.caseName, id.Name)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"https://www.courtlistener.com/",
		"https://www.courtlistener.com/api/rest/v4/courts/scotus/",
		"https://example.com/opinion/abc/",
		"99999999999999999999999",
	} {
		_, err := Parse(raw)
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation), "input %q: %v", raw, err)
	}
}

func TestLooksLikeCitation(t *testing.T) {
	assert.True(t, LooksLikeCitation("410 U.S. 113"))
	assert.True(t, LooksLikeCitation("5 F.3d 1234"))
	assert.True(t, LooksLikeCitation("93 S. Ct. 705"))
	assert.False(t, LooksLikeCitation("Roe v. Wade"))
	assert.False(t, LooksLikeCitation("410 U.S."))
}
