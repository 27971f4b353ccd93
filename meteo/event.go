package meteo

import "time"

// Event is one precipitation event: the declared start, the per-timestep
// interval, and exactly one row of station values per timestep.
type Event struct {
	Start           time.Time
	SeriesIndex     int
	Interpolation   int
	TimestepSeconds int
	Rows            [][]float64
}

// Duration is the event length implied by the declared timesteps.
func (e *Event) Duration() time.Duration {
	return time.Duration(len(e.Rows)*e.TimestepSeconds) * time.Second
}

// File is one parsed precipitation file.
type File struct {
	Comments []string
	Events   []*Event
}

// header holds a decoded event header line before its rows arrive.
type header struct {
	start           time.Time
	seriesIndex     int
	interpolation   int
	steps           int
	timestepSeconds int
}

// decodeHeader matches a ten-integer event header. Out-of-range datetime
// components, a non-positive step count or interval, or any other token
// shape do not match.
func decodeHeader(values []int) (header, bool) {
	if len(values) != 10 {
		return header{}, false
	}
	y, mo, d := values[0], values[1], values[2]
	h, mi, s := values[3], values[4], values[5]
	steps, dt := values[8], values[9]
	if mo < 1 || mo > 12 || d < 1 || d > 31 ||
		h < 0 || h > 23 || mi < 0 || mi > 59 || s < 0 || s > 59 {
		return header{}, false
	}
	if steps <= 0 || dt <= 0 {
		return header{}, false
	}
	return header{
		start:           time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC),
		seriesIndex:     values[6],
		interpolation:   values[7],
		steps:           steps,
		timestepSeconds: dt,
	}, true
}
