package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	roe := Document{
		OpinionID: 108713, CaseName: "Roe v. Wade", Court: "scotus", DateFiled: "1973-01-22",
		Citations: []string{"410 U.S. 113"}, CitationCount: 3867, Text: loadFixture(t),
	}
	casey := Document{
		OpinionID: 112786, CaseName: "Planned Parenthood of Southeastern Pa. v. Casey", Court: "scotus", DateFiled: "1992-06-29",
		Citations: []string{"505 U.S. 833"},
		Text: "We reaffirm the essential holding of Roe v. Wade, 410 U. S. 113 (1973). " +
			"We conclude that the undue burden standard applies. See Griswold v. Connecticut, 381 U.S. 479 (1965). " +
			"The judgment of the Court of Appeals is affirmed in part and reversed in part.",
	}

	cmp := Compare(roe, casey, FocusHoldings)
	assert.Equal(t, FocusHoldings, cmp.Focus)
	assert.Equal(t, Row{Label: "Case", A: "Roe v. Wade", B: "Planned Parenthood of Southeastern Pa. v. Casey"}, cmp.Rows[0])
	assert.Equal(t, "Holdings", cmp.A.Title)
	require.NotEmpty(t, cmp.B.Passages)
	assert.Equal(t, "We conclude that the undue burden standard applies.", cmp.B.Passages[0])
	assert.Equal(t, []string{"381 U.S. 479"}, cmp.SharedCitations)
	assert.True(t, cmp.BCitesA)
	assert.False(t, cmp.ACitesB)
}

func TestCompareOutcomes(t *testing.T) {
	a := Document{CaseName: "A v. B", Text: "The facts are simple. The judgment is reversed."}
	b := Document{CaseName: "C v. D", Text: "The petition is dismissed."}
	cmp := Compare(a, b, FocusOutcomes)
	assert.Equal(t, []string{"The judgment is reversed."}, cmp.A.Passages)
	assert.Equal(t, []string{"The petition is dismissed."}, cmp.B.Passages)
	assert.Empty(t, cmp.SharedCitations)
}

func TestParseComparisonFocus(t *testing.T) {
	f, err := ParseComparisonFocus("")
	require.NoError(t, err)
	assert.Equal(t, FocusHoldings, f)
	_, err = ParseComparisonFocus("vibes")
	assert.Error(t, err)
}

func TestAssessImpact(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in := ImpactInput{
		CitationCount: 120,
		CitingTotal:   118,
		Citing: []CitingCase{
			{CaseName: "X v. Y", DateFiled: "2023-11-02"},
			{CaseName: "P v. Q", DateFiled: "2023-01-15"},
			{CaseName: "M v. N", DateFiled: "2019-05-30"},
		},
	}

	got := AssessImpact(in, DepthComprehensive, now)
	assert.Equal(t, "Significant", got.Label)
	assert.Equal(t, "2023-11-02", got.MostRecent)
	assert.Equal(t, []YearCount{{Year: 2023, Count: 2}, {Year: 2019, Count: 1}}, got.ByYear)
	assert.Contains(t, got.Trend, "Actively cited")
	assert.Len(t, got.Recent, 3)

	basic := AssessImpact(in, DepthBasic, now)
	assert.Empty(t, basic.Recent)
}

func TestAssessImpactUncited(t *testing.T) {
	got := AssessImpact(ImpactInput{}, DepthBasic, time.Now())
	assert.Equal(t, "No recorded citations", got.Label)
	assert.Equal(t, "No citing opinions found", got.Trend)
	assert.Empty(t, got.MostRecent)
}

func TestImpactLabels(t *testing.T) {
	for reach, want := range map[int]string{0: "No recorded citations", 3: "Limited", 10: "Moderate", 60: "Significant", 250: "Landmark"} {
		assert.Equal(t, want, impactLabel(reach))
	}
}

func TestEstimateTokensOverride(t *testing.T) {
	stubTokens(t)
	assert.Equal(t, 2, EstimateTokens("12345678"))
}
