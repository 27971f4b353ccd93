// Package profile reads and writes the legacy vertical-profile time series
// files of the suite. The layout is a '#'-comment header (file start only),
// the layer declaration, then alternating TIME and value lines:
//
//	# water temperature at the seaward boundary
//	LAYER_TYPE=SIGMA
//	LAYERS=0.0 0.5 1.0
//	TIME=0 seconds since 2006-01-01 00:00:00 +00:00
//	5.0 5.0 10.0
//	TIME=3600 seconds since 2006-01-01 00:00:00 +00:00
//	5.0 5.0 10.0
//
// Every TIME line is followed by exactly one data line with one value per
// declared layer.
package profile
