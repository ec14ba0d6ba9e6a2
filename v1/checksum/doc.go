// Package checksum provides the CRC routines of the toolbox: CRC-16/CCITT-FALSE
// and CRC-32/MPEG-2, computed bitwise without lookup tables. Both are pure
// functions and safe for concurrent use.
package checksum
