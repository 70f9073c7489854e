// Package buffer holds the text of one document with its cursor, selection
// and undo history.
//
// Positions are (Row, Col) pairs counted in runes from zero. Flat offsets
// count each line break as one rune; the session layer speaks offsets and
// converts at the boundary with Offset and PosAt.
package buffer
