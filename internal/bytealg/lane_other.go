//go:build !(goexperiment.simd && amd64)

package bytealg

// Kernel names the lane implementation in use.
func Kernel() string {
	return "swar"
}

// EqualMask16 compares every byte of lane[:16] with c.
func EqualMask16(lane []byte, c byte) uint16 {
	return equalMask16Generic(lane, c)
}

// EqualMask32 compares every byte of window[:32] with c.
func EqualMask32(window []byte, c byte) uint32 {
	return equalMask32Generic(window, c)
}

// MatchMask16 compares lane[:16] with needle position by position.
func MatchMask16(lane []byte, needle *[16]byte) uint16 {
	return matchMask16Generic(lane, needle)
}

// AllZero32 reports whether window[:32] holds only zero bytes.
func AllZero32(window []byte) bool {
	return allZero32Generic(window)
}

// Release must be called when a scan that used 256-bit lanes is done.
func Release() {}
