package forcing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/delfland/hydroio/blockfile"
)

func TestParseFunction_CanonicalAndCaseInsensitive(t *testing.T) {
	for f, name := range functionNames {
		got, err := ParseFunction(name, 0)
		require.NoError(t, err)
		require.Equal(t, f, got)

		got, err = ParseFunction("  "+name+" ", 0)
		require.NoError(t, err)
		require.Equal(t, f, got)
	}

	got, err := ParseFunction("TimeSeries", 0)
	require.NoError(t, err)
	require.Equal(t, FuncTimeSeries, got)

	got, err = ParseFunction("Astronomic-Correction", 0)
	require.NoError(t, err)
	require.Equal(t, FuncAstronomicCorrection, got)
}

func TestParseFunction_Unknown(t *testing.T) {
	_, err := ParseFunction("fourier", 12)
	require.Error(t, err)

	var uerr *UnknownFunctionError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "fourier", uerr.Name)
	require.Equal(t, 12, uerr.Line)
	require.Contains(t, err.Error(), `unrecognized forcing function "fourier"`)
}

// section builds a Section from key/value pairs in declaration order.
func section(rows [][]float64, kv ...string) *Section {
	sec := &Section{Header: "forcing", Rows: rows, End: len(kv) / 2}
	for i := 0; i+1 < len(kv); i += 2 {
		sec.Properties = append(sec.Properties, blockfile.Property{
			Key: kv[i], Value: kv[i+1], Line: i / 2,
		})
	}
	return sec
}

func TestNewForcing_TimeSeries(t *testing.T) {
	sec := section([][]float64{{0, 1.2}, {60, 1.4}},
		"name", "east_0001",
		"function", "timeseries",
		"timeInterpolation", "linear",
		"quantity", "time",
		"unit", "minutes since 2001-01-01",
		"quantity", "waterlevelbnd",
		"unit", "m",
	)
	f, err := NewForcing(sec)
	require.NoError(t, err)
	require.Equal(t, "east_0001", f.Name)
	require.Equal(t, FuncTimeSeries, f.Function)
	require.Equal(t, "linear", f.TimeInterpolation)
	require.Equal(t, []Quantity{
		{Name: "time", Unit: "minutes since 2001-01-01"},
		{Name: "waterlevelbnd", Unit: "m"},
	}, f.Quantities)
	require.Equal(t, sec.Rows, f.Rows)
}

func TestNewForcing_UnitWithoutQuantity(t *testing.T) {
	sec := section(nil,
		"name", "b", "function", "harmonic", "unit", "m")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "no preceding quantity")
}

func TestNewForcing_QuantityLeftWithoutUnit(t *testing.T) {
	sec := section(nil,
		"name", "b", "function", "harmonic", "quantity", "phase")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "quantity/unit counts do not match")
}

func TestNewForcing_ConsecutiveQuantities(t *testing.T) {
	sec := section(nil,
		"name", "b", "function", "harmonic",
		"quantity", "amplitude", "quantity", "phase")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "before the previous quantity received a unit")
}

func TestNewForcing_RowWidthMismatch(t *testing.T) {
	sec := section([][]float64{{0, 1}, {1}},
		"name", "b", "function", "qhtable",
		"quantity", "qhbnd discharge", "unit", "m3/s",
		"quantity", "qhbnd waterlevel", "unit", "m")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "data row 1 has 1 values for 2 quantities")
}

func TestNewForcing_AttributeSideTable(t *testing.T) {
	sec := section([][]float64{{0, 0.5}},
		"name", "b", "function", "timeseries",
		"tracerFallVelocity", "0.001",
		"tracerDecayTime", "none",
		"quantity", "time", "unit", "seconds since 2020-01-01",
		"quantity", "tracerbnd", "unit", "kg/m3")
	f, err := NewForcing(sec)
	require.NoError(t, err)
	require.Len(t, f.Attributes, 2)
	require.True(t, f.Attributes["tracerFallVelocity"].RawEquals(cty.NumberFloatVal(0.001)))
	require.True(t, f.Attributes["tracerDecayTime"].RawEquals(cty.StringVal("none")))
}

func TestNewForcing_UnknownKeyword(t *testing.T) {
	sec := section(nil,
		"name", "b", "function", "harmonic",
		"salinity", "30",
		"quantity", "amplitude", "unit", "m")
	_, err := NewForcing(sec)

	var kerr *UnknownKeywordError
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, "salinity", kerr.Key)
	require.Equal(t, "b", kerr.Block)
}

func TestNewForcing_ConstantRequiresExactlyOneRow(t *testing.T) {
	base := []string{
		"name", "b", "function", "constant",
		"quantity", "waterlevelbnd", "unit", "m",
	}

	_, err := NewForcing(section([][]float64{{1.5}}, base...))
	require.NoError(t, err)

	_, err = NewForcing(section([][]float64{{1.5}, {1.6}}, base...))
	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "exactly one data row")
}

func TestNewForcing_TimeSeriesMustLeadWithTime(t *testing.T) {
	sec := section([][]float64{{0, 1}},
		"name", "b", "function", "timeseries",
		"quantity", "waterlevelbnd", "unit", "m",
		"quantity", "time", "unit", "seconds since 2020-01-01")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "must be time")
}

func TestNewForcing_T3DRequiresVertPositions(t *testing.T) {
	sec := section([][]float64{{0, 1, 2}},
		"name", "b", "function", "t3d",
		"quantity", "time", "unit", "seconds since 2020-01-01",
		"quantity", "salinitybnd", "unit", "ppt",
		"quantity", "salinitybnd", "unit", "ppt")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "no vertPositions")
}

func TestNewForcing_T3DWithVerticals(t *testing.T) {
	sec := section([][]float64{{0, 1, 2}},
		"name", "b", "function", "t3d",
		"vertPositions", "0.0 0.5 1.0",
		"vertPositionType", "percBed",
		"vertInterpolation", "linear",
		"quantity", "time", "unit", "seconds since 2020-01-01",
		"quantity", "salinitybnd", "unit", "ppt",
		"quantity", "salinitybnd", "unit", "ppt")
	f, err := NewForcing(sec)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5, 1}, f.VertPositions)
	require.Equal(t, "percBed", f.VertPositionType)
	require.Equal(t, "linear", f.VertInterpolation)
}

func TestNewForcing_MissingName(t *testing.T) {
	sec := section(nil,
		"function", "harmonic", "quantity", "amplitude", "unit", "m")
	_, err := NewForcing(sec)

	var qerr *QuantityError
	require.ErrorAs(t, err, &qerr)
	require.Contains(t, qerr.Detail, "no name")
}
