package guard

import (
	"runtime/debug"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sink byte

func TestTrailingGuardFaults(t *testing.T) {
	r, err := Alloc(100)
	require.NoError(t, err)
	defer r.Close()
	require.True(t, r.Guarded())

	buf := r.Bytes()
	past := (*byte)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), len(buf)))

	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	assert.NotPanics(t, func() { sink = buf[len(buf)-1] })
	assert.Panics(t, func() { sink = *past })
}
