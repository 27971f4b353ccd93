// Package blockfile implements the line-oriented structured-block parser
// shared by the text formats of the suite (polyline geometries, boundary
// forcing blocks, precipitation events, vertical profiles).
//
// Input is consumed one physical line at a time through Parser.FeedLine,
// so callers can stream arbitrarily large files. A block is a free-text
// description (comment lines), a name line, a dimensions line declaring the
// row and column counts, and exactly that many data rows:
//
//	* an optional description
//	L1
//	2    3
//	    1.0    2.0    3.0
//	    4.0    5.0    6.0
//
// Lexical rules vary per format and are captured in a Grammar. Non-fatal
// findings (ignored blank lines) accumulate as warnings; structural and
// lexical failures mark the surrounding block invalid and surface as a
// single fatal error when Parser.Finalize runs. Diagnostics are carried as
// hcl.Diagnostics with line spans in the Subject range.
//
// The package also contains the inverse operation: Write renders finalized
// blocks back to the line format, and a parse of its output yields
// structurally equal blocks.
package blockfile
