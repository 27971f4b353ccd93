// Package meteo reads and writes the legacy precipitation event files of
// the suite. A file is '*'-comments (at the start only), then one or more
// events, each a header line of ten integers — start datetime (year, month,
// day, hour, minute, second), series index, interpolation flag, timestep
// count and seconds per timestep — followed by exactly one numeric row per
// timestep:
//
//	* rainfall gauge 4, december storm
//	2021 12 20 0 0 0 1 0 4 20
//	    0.0
//	    1.2
//	    3.4
//	    0.6
//
// Row width is free but must be consistent within one event (one column
// per station).
package meteo
