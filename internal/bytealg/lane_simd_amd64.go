//go:build goexperiment.simd && amd64

package bytealg

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// Kernel names the lane implementation in use.
func Kernel() string {
	if hasAVX2 {
		return "archsimd/avx2"
	}
	return "swar"
}

// EqualMask16 compares every byte of lane[:16] with c.
func EqualMask16(lane []byte, c byte) uint16 {
	if !hasAVX2 {
		return equalMask16Generic(lane, c)
	}
	v := archsimd.LoadUint8x16Slice(lane)
	return v.Equal(archsimd.BroadcastUint8x16(c)).ToBits()
}

// EqualMask32 compares every byte of window[:32] with c.
func EqualMask32(window []byte, c byte) uint32 {
	if !hasAVX2 {
		return equalMask32Generic(window, c)
	}
	v := archsimd.LoadUint8x32Slice(window)
	return v.Equal(archsimd.BroadcastUint8x32(c)).ToBits()
}

// MatchMask16 compares lane[:16] with needle position by position.
func MatchMask16(lane []byte, needle *[16]byte) uint16 {
	if !hasAVX2 {
		return matchMask16Generic(lane, needle)
	}
	v := archsimd.LoadUint8x16Slice(lane)
	return v.Equal(archsimd.LoadUint8x16(needle)).ToBits()
}

// AllZero32 reports whether window[:32] holds only zero bytes.
func AllZero32(window []byte) bool {
	if !hasAVX2 {
		return allZero32Generic(window)
	}
	v := archsimd.LoadUint8x32Slice(window)
	return v.Equal(archsimd.BroadcastUint8x32(0)).ToBits() == 0xFFFFFFFF
}

// Release must be called when a scan that used 256-bit lanes is done.
func Release() {
	if hasAVX2 {
		archsimd.ClearAVXUpperBits()
	}
}
