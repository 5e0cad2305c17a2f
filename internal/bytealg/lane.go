// Package bytealg provides 16- and 32-byte lane comparisons that return one
// bit per byte position, bit i describing byte i of the lane.
//
// Callers guarantee that a lane slice holds at least 16 bytes and a window
// slice at least 32. Only the first 16 or 32 bytes are read.
package bytealg

import "encoding/binary"

const (
	lo7  = 0x7F7F7F7F7F7F7F7F
	ones = 0x0101010101010101

	// gather moves the bits at positions 0, 8, ..., 56 into the top byte.
	gather = 0x0102040810204080
)

// zeroBytes returns a byte mask with bit i set when byte i of x is zero.
// Unlike the borrow based (x-ones)&^x test it has no false positives.
func zeroBytes(x uint64) uint8 {
	t := ^((x&lo7 + lo7) | x | lo7)
	return uint8(((t >> 7) * gather) >> 56)
}

func broadcast(c byte) uint64 {
	return uint64(c) * ones
}

func equalMask16Generic(lane []byte, c byte) uint16 {
	_ = lane[15]
	b := broadcast(c)
	m0 := zeroBytes(binary.LittleEndian.Uint64(lane[0:]) ^ b)
	m1 := zeroBytes(binary.LittleEndian.Uint64(lane[8:]) ^ b)
	return uint16(m0) | uint16(m1)<<8
}

func equalMask32Generic(window []byte, c byte) uint32 {
	_ = window[31]
	return uint32(equalMask16Generic(window[0:16], c)) | uint32(equalMask16Generic(window[16:32], c))<<16
}

func matchMask16Generic(lane []byte, needle *[16]byte) uint16 {
	_ = lane[15]
	m0 := zeroBytes(binary.LittleEndian.Uint64(lane[0:]) ^ binary.LittleEndian.Uint64(needle[0:]))
	m1 := zeroBytes(binary.LittleEndian.Uint64(lane[8:]) ^ binary.LittleEndian.Uint64(needle[8:]))
	return uint16(m0) | uint16(m1)<<8
}

func allZero32Generic(window []byte) bool {
	_ = window[31]
	return binary.LittleEndian.Uint64(window[0:])|
		binary.LittleEndian.Uint64(window[8:])|
		binary.LittleEndian.Uint64(window[16:])|
		binary.LittleEndian.Uint64(window[24:]) == 0
}
