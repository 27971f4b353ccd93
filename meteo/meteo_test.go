package meteo

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/delfland/hydroio/blockfile"
)

func TestDecodeHeader(t *testing.T) {
	h, ok := decodeHeader([]int{2021, 12, 20, 0, 0, 0, 1, 0, 4, 20})
	require.True(t, ok)
	require.Equal(t, time.Date(2021, 12, 20, 0, 0, 0, 0, time.UTC), h.start)
	require.Equal(t, 1, h.seriesIndex)
	require.Equal(t, 0, h.interpolation)
	require.Equal(t, 4, h.steps)
	require.Equal(t, 20, h.timestepSeconds)

	_, ok = decodeHeader([]int{2021, 12, 20, 0, 0, 0, 1, 0, 4})
	require.False(t, ok)
	_, ok = decodeHeader([]int{2021, 13, 20, 0, 0, 0, 1, 0, 4, 20})
	require.False(t, ok)
	_, ok = decodeHeader([]int{2021, 12, 20, 24, 0, 0, 1, 0, 4, 20})
	require.False(t, ok)
	_, ok = decodeHeader([]int{2021, 12, 20, 0, 0, 0, 1, 0, 0, 20})
	require.False(t, ok)
	_, ok = decodeHeader([]int{2021, 12, 20, 0, 0, 0, 1, 0, 4, -1})
	require.False(t, ok)
}

func TestParse_SingleEvent(t *testing.T) {
	text := strings.Join([]string{
		"* precipitation for station de Bilt",
		"2021 12 20 0 0 0 1 0 4 20",
		"1.2",
		"1.2",
		"3.0",
		"0.0",
	}, "\n")
	file, warns, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.NoError(t, err)
	require.Empty(t, warns)
	require.Equal(t, []string{" precipitation for station de Bilt"}, file.Comments)
	require.Len(t, file.Events, 1)

	e := file.Events[0]
	require.Equal(t, time.Date(2021, 12, 20, 0, 0, 0, 0, time.UTC), e.Start)
	require.Equal(t, [][]float64{{1.2}, {1.2}, {3.0}, {0.0}}, e.Rows)
	require.Equal(t, 20, e.TimestepSeconds)
	require.Equal(t, 80*time.Second, e.Duration())
}

func TestParse_StrayRowAfterCompletedEvent(t *testing.T) {
	text := strings.Join([]string{
		"2021 12 20 0 0 0 1 0 2 20",
		"1.2",
		"1.2",
		"3.0",
	}, "\n")
	_, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.Error(t, err)

	var perr *blockfile.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "precipitation", perr.Format)
	require.Contains(t, err.Error(), "Expected an event header at line 3.")
	require.Contains(t, err.Error(), "Invalid block 3:3")
}

func TestParse_DeclaredCountWinsOverHeaderLookalikes(t *testing.T) {
	// While an event is open, even a line that would decode as a header is
	// consumed as a data row.
	text := strings.Join([]string{
		"2021 1 1 0 0 0 1 0 2 3600",
		"2022 2 2 0 0 0 1 0 2 3600",
		"2023 3 3 0 0 0 1 0 2 3600",
	}, "\n")
	file, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.NoError(t, err)
	require.Len(t, file.Events, 1)
	require.Len(t, file.Events[0].Rows, 2)
	require.Equal(t, 2022.0, file.Events[0].Rows[0][0])
}

func TestParse_EOFMidEvent(t *testing.T) {
	text := "2021 12 20 0 0 0 1 0 4 20\n1.2\n1.2"
	_, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.Error(t, err)
	require.Contains(t, err.Error(), blockfile.ReasonEOF)
	require.Contains(t, err.Error(), "Invalid block 0:2")
}

func TestParse_InconsistentRowWidth(t *testing.T) {
	text := strings.Join([]string{
		"2021 12 20 0 0 0 1 0 3 20",
		"1.2 0.4",
		"1.2",
	}, "\n")
	_, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.Error(t, err)
	require.Contains(t, err.Error(), reasonBadRow)
}

func TestParse_LeadingGarbage(t *testing.T) {
	_, _, err := Parse([]string{"not a header"}, "rain.bui")
	require.Error(t, err)
	require.Contains(t, err.Error(), reasonBadHeader)
}

func TestParse_SecondEventRecoversFromAStrayRow(t *testing.T) {
	text := strings.Join([]string{
		"stray",
		"garbage",
		"2021 12 20 0 0 0 1 0 1 3600",
		"0.5",
	}, "\n")
	_, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid block 0:1")
}

func TestParse_CommentAfterDataIsFatal(t *testing.T) {
	text := "2021 12 20 0 0 0 1 0 1 3600\n0.5\n* too late"
	_, _, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.Error(t, err)
	require.Equal(t,
		"Line 2: comments are only supported at the start of the file, before the time series data.",
		err.Error())
}

func TestParse_BlankLinesWarn(t *testing.T) {
	text := "2021 12 20 0 0 0 1 0 1 3600\n0.5\n\n\n2022 1 1 0 0 0 2 0 1 60\n0.1"
	file, warns, err := Parse(strings.Split(text, "\n"), "rain.bui")
	require.NoError(t, err)
	require.Len(t, file.Events, 2)
	require.Len(t, warns, 1)
	require.Equal(t, 2, warns[0].Subject.Start.Line)
	require.Equal(t, 3, warns[0].Subject.End.Line)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	in := &File{
		Comments: []string{" two gauges, generated fixture"},
		Events: []*Event{
			{
				Start:           time.Date(2021, 12, 20, 6, 30, 0, 0, time.UTC),
				SeriesIndex:     1,
				Interpolation:   0,
				TimestepSeconds: 20,
				Rows:            [][]float64{{1.2, 0}, {1.2, 0.4}, {3, 1}, {0, 0}},
			},
			{
				Start:           time.Date(2021, 12, 21, 0, 0, 0, 0, time.UTC),
				SeriesIndex:     1,
				Interpolation:   1,
				TimestepSeconds: 3600,
				Rows:            [][]float64{{0.5, 0.5}},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "rain.bui")
	require.NoError(t, WriteFile(path, in, blockfile.WriteConfig{}))

	out, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(in, out))
}
