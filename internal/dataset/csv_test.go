package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawCSV = `server.city,server.region,lat,long,validity,hits
Austin,TX,30.2672,-97.7431,valid,10
Austin,TX,30.2672,-97.7431,invalid,90
"Winston-Salem, East",NC,36.0999,-80.2442,suspicious,12.0
Boston,MA,42.3601,-71.0589,unknown,
`

func TestReadHits(t *testing.T) {
	hits, err := ReadHits(strings.NewReader(rawCSV), "raw.csv")
	require.NoError(t, err)
	require.Len(t, hits, 4)

	assert.Equal(t, models.HitRecord{
		City: "Austin", Region: "TX", Lat: 30.2672, Long: -97.7431,
		Validity: models.ValidityValid, Hits: 10,
	}, hits[0])
	assert.Equal(t, "Winston-Salem, East", hits[2].City)
	assert.Equal(t, int64(12), hits[2].Hits, "decimal counts are truncated")
	assert.Equal(t, int64(0), hits[3].Hits, "blank count is zero")
}

func TestReadHitsColumnOrderAndExtras(t *testing.T) {
	in := "\ufeffhits,validity,long,lat,server.region,server.city,note\n5,invalid,-1.5,2.5,RG,CT,x\n"
	hits, err := ReadHits(strings.NewReader(in), "raw.csv")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, models.HitRecord{City: "CT", Region: "RG", Lat: 2.5, Long: -1.5, Validity: models.ValidityInvalid, Hits: 5}, hits[0])
}

func TestReadHitsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		is   error
	}{
		{"empty", "", 1, nil},
		{"missing column", "server.city,server.region,lat,long,validity\n", 1, ErrMissingColumn},
		{"bad lat", "server.city,server.region,lat,long,validity,hits\nA,B,north,1,valid,1\n", 2, nil},
		{"bad hits", "server.city,server.region,lat,long,validity,hits\nA,B,1,1,valid,1\nA,B,1,1,invalid,many\n", 3, nil},
		{"ragged row", "server.city,server.region,lat,long,validity,hits\nA,B,1,1\n", 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadHits(strings.NewReader(tt.in), "raw.csv")
			require.Error(t, err)

			var lerr *LoadError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, "raw.csv", lerr.Path)
			assert.Equal(t, tt.line, lerr.Line)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestReadHitsFileMissing(t *testing.T) {
	_, err := ReadHitsFile("/nonexistent/raw_data.csv")
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "/nonexistent/raw_data.csv", lerr.Path)
}

func TestReadExport(t *testing.T) {
	in := "server.city,server.region,total,percent_invalid\nAustin,TX,100,90.0\nBoston,MA,100,5.0\n"
	table, err := ReadExport(strings.NewReader(in), "pivot.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"server.city", "server.region", "total", "percent_invalid"}, table.Header)
	assert.Equal(t, [][]string{{"Austin", "TX", "100", "90.0"}, {"Boston", "MA", "100", "5.0"}}, table.Rows)

	// a pandas index column has a blank header cell
	table, err = ReadExport(strings.NewReader(",server.city,total\n0,Austin,100\n"), "pivot.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Unnamed: 0", "server.city", "total"}, table.Header)
	assert.Equal(t, [][]string{{"0", "Austin", "100"}}, table.Rows)

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, table))
	assert.Equal(t, ",Unnamed: 0,server.city,total\n0,0,Austin,100\n", buf.String())

	_, err = ReadExport(strings.NewReader(""), "pivot.csv")
	assert.Error(t, err)

	_, err = ReadExport(strings.NewReader("a,b\n1\n"), "pivot.csv")
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 2, lerr.Line)
}

func TestWriteExport(t *testing.T) {
	table := models.ExportTable{
		Header: []string{"server.city", "total"},
		Rows:   [][]string{{"Austin", "100"}, {"Winston-Salem, NC", "7"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, table))
	assert.Equal(t, ",server.city,total\n0,Austin,100\n1,\"Winston-Salem, NC\",7\n", buf.String())
}

func TestWriteExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, models.ExportTable{Header: []string{"a"}}))
	assert.Equal(t, ",a\n", buf.String())
}
