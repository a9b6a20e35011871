package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horizons/internal/fixtures"
	"horizons/internal/models"
)

func TestParseEarthFixture(t *testing.T) {
	records, err := Parse(fixtures.EarthDaily)
	require.NoError(t, err)
	require.Len(t, records, 3)

	wantEpochs := []float64{60310, 60311, 60312}
	wantDates := []string{
		"A.D. 2024-Jan-01 00:00:00.0000",
		"A.D. 2024-Jan-02 00:00:00.0000",
		"A.D. 2024-Jan-03 00:00:00.0000",
	}
	for i, r := range records {
		assert.InDelta(t, wantEpochs[i], r.Epoch, 1e-9)
		assert.Equal(t, wantDates[i], r.Calendar)
	}

	first := records[0]
	assert.InDelta(t, -2.529003040047795e+07, first.Position[0], 1e-3)
	assert.InDelta(t, 1.327232604165489e+08, first.Position[1], 1e-3)
	assert.InDelta(t, 5.022613542810082e+03, first.Position[2], 1e-9)
	assert.InDelta(t, -2.981396627834025e+01, first.Velocity[0], 1e-12)
	assert.InDelta(t, -5.154497113001131e+00, first.Velocity[1], 1e-12)
	assert.InDelta(t, 1.041128829651853e-03, first.Velocity[2], 1e-15)
}

func TestParseToleratesWhitespace(t *testing.T) {
	raw := "\n\n  header junk  \n   $$SOE   \n\n" +
		"2451545.0,A.D. 2000-Jan-01 12:00:00.0000,1,2,3,4,5,6\n" +
		"   2451546.0 ,   A.D. 2000-Jan-02 12:00:00.0000 ,\t1.5 , 2.5,3.5 ,  4.5,5.5,6.5 ,  \n" +
		"\n $$EOE\n\n\n"

	records, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.Record{
		Epoch:    51544.5,
		Calendar: "A.D. 2000-Jan-01 12:00:00.0000",
		Position: [3]float64{1, 2, 3},
		Velocity: [3]float64{4, 5, 6},
	}, records[0])
	assert.Equal(t, [3]float64{4.5, 5.5, 6.5}, records[1].Velocity)
}

func TestParseKeepsOrderAndDuplicates(t *testing.T) {
	raw := "$$SOE\n" +
		"2451547.0, b, 0,0,0,0,0,0,\n" +
		"2451545.0, a, 0,0,0,0,0,0,\n" +
		"2451545.0, a, 0,0,0,0,0,0,\n" +
		"$$EOE\n"

	records, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"b", "a", "a"}, []string{records[0].Calendar, records[1].Calendar, records[2].Calendar})
}

func TestParseEmptyBlock(t *testing.T) {
	records, err := Parse("$$SOE\n$$EOE\n")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseMalformed(t *testing.T) {
	row := "2451545.0, A.D. 2000-Jan-01 12:00:00.0000, 1, 2, 3, 4, 5, 6,"

	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{
			name:   "missing end marker",
			raw:    strings.Split(fixtures.EarthDaily, "$$EOE")[0],
			reason: "missing end marker",
		},
		{
			name:   "missing start marker",
			raw:    fixtures.UnknownTarget,
			reason: "missing start marker",
		},
		{
			name:   "end before start",
			raw:    "$$EOE\n" + row + "\n$$SOE\n",
			reason: "end marker before start marker",
		},
		{
			name:   "repeated start",
			raw:    "$$SOE\n" + row + "\n$$SOE\n$$EOE\n",
			reason: "repeated start marker",
		},
		{
			name:   "repeated end",
			raw:    "$$SOE\n" + row + "\n$$EOE\n$$EOE\n",
			reason: "repeated end marker",
		},
		{
			name:   "too few fields",
			raw:    "$$SOE\n2451545.0, A.D. 2000-Jan-01, 1, 2, 3,\n$$EOE\n",
			reason: "expected 8 fields, got 5",
		},
		{
			name:   "too many fields",
			raw:    "$$SOE\n" + row + " 7, 8,\n$$EOE\n",
			reason: "expected 8 fields, got 10",
		},
		{
			name:   "bad epoch",
			raw:    "$$SOE\nJD, A.D. 2000-Jan-01, 1, 2, 3, 4, 5, 6,\n$$EOE\n",
			reason: "field epoch is not a number",
		},
		{
			name:   "bad component",
			raw:    "$$SOE\n2451545.0, A.D. 2000-Jan-01, 1, 2, n/a, 4, 5, 6,\n$$EOE\n",
			reason: "field Z is not a number",
		},
		{
			name:   "nan component",
			raw:    "$$SOE\n2451545.0, A.D. 2000-Jan-01, NaN, 2, 3, 4, 5, 6,\n$$EOE\n",
			reason: "field X is not finite",
		},
		{
			name:   "infinite velocity",
			raw:    "$$SOE\n2451545.0, A.D. 2000-Jan-01, 1, 2, 3, 4, -Inf, 6,\n$$EOE\n",
			reason: "field VY is not finite",
		},
		{
			name:   "overflowing epoch",
			raw:    "$$SOE\n1e400, A.D. 2000-Jan-01, 1, 2, 3, 4, 5, 6,\n$$EOE\n",
			reason: "field epoch is not a number",
		},
		{
			name:   "hex float",
			raw:    "$$SOE\n2451545.0, A.D. 2000-Jan-01, 1, 0x1p3, 3, 4, 5, 6,\n$$EOE\n",
			reason: "field Y is not a number",
		},
		{
			name:   "empty calendar",
			raw:    "$$SOE\n2451545.0, , 1, 2, 3, 4, 5, 6,\n$$EOE\n",
			reason: "empty calendar date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, models.ErrMalformedResponse)

			var mr *models.MalformedResponseError
			require.True(t, errors.As(err, &mr))
			assert.Contains(t, mr.Reason, tt.reason)
		})
	}
}

func TestParseSurfacesServiceMessage(t *testing.T) {
	_, err := Parse(fixtures.UnknownTarget)

	var mr *models.MalformedResponseError
	require.True(t, errors.As(err, &mr))
	assert.Equal(t, "Unknown target (123456789). Maybe try different id_type?", mr.Text)
	assert.Contains(t, err.Error(), "Unknown target")
}
