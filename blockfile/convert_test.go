package blockfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt_NoSilentTruncation(t *testing.T) {
	v, err := ParseInt("42")
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = ParseInt("1.5")
	require.Error(t, err)
	_, err = ParseInt("")
	require.Error(t, err)
}

func TestParsePositiveInt(t *testing.T) {
	v, err := ParsePositiveInt("3")
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = ParsePositiveInt("0")
	require.Error(t, err)
	_, err = ParsePositiveInt("-2")
	require.Error(t, err)
}

func TestParseFloats_FailsOnFirstBadToken(t *testing.T) {
	vs, err := ParseFloats("0.0  -1.5  3e2")
	require.NoError(t, err)
	require.Equal(t, []float64{0.0, -1.5, 300.0}, vs)

	_, err = ParseFloats("1.0 two 3.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"two"`)
}

func TestParseInts(t *testing.T) {
	vs, err := ParseInts("2021 12 20")
	require.NoError(t, err)
	require.Equal(t, []int{2021, 12, 20}, vs)

	_, err = ParseInts("2021 12.5")
	require.Error(t, err)
}
