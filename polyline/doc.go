// Package polyline reads and writes the polyline geometry files of the
// suite (.pol, .pli, .pliz). A file is a sequence of named blocks, each an
// optional multi-line '*'-comment description, a name line, a dimensions
// line and the declared number of coordinate rows. Whether the third
// coordinate column is a z-value is a property of the Dialect, chosen
// explicitly by the caller; DialectForFile is the one place that maps file
// extensions to dialects.
package polyline
