package fmtspec

import (
	"unsafe"
)

var (
	hex8  = Parse("#04x")
	hex16 = Parse("#06x")
	hex32 = Parse("#010x")
	hex64 = Parse("#018x")
)

// Hex formats v as zero-padded hex with a 0x prefix, padded to the full
// width of T: Hex(uint8(0x2a)) renders "0x2a" and Hex(uint32(0x2a)) renders
// "0x0000002a".
func Hex[T Unsigned](v T) Arg {
	switch unsafe.Sizeof(v) {
	case 1:
		return FO(hex8, v)
	case 2:
		return FO(hex16, v)
	case 4:
		return FO(hex32, v)
	default:
		return FO(hex64, v)
	}
}
