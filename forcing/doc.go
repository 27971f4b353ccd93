// Package forcing reads and writes the boundary-condition forcing files of
// the suite (.bc). A file is a sequence of keyword blocks:
//
//	# comments, legal only before the first block
//	[General]
//	    fileVersion = 1.01
//	    fileType    = boundConds
//
//	[Forcing]
//	    name     = boundary01_0001
//	    function = timeseries
//	    quantity = time
//	    unit     = minutes since 2006-01-01 00:00:00
//	    quantity = waterlevelbnd
//	    unit     = m
//	        0.0    2.5
//	       60.0    2.6
//
// Keys need not be unique: each quantity line opens a column and the next
// unit line closes it. The block scanner produces generic Sections; the
// forcing constructor interprets them, selecting the concrete variant by
// the function discriminator. Property keys outside the forcing keyword set
// are accepted only when they carry an allow-listed prefix (tracers,
// sediment fractions); those land in an explicit typed attribute table
// instead of failing the block.
package forcing
