package bytealg

import "golang.org/x/sys/cpu"

// Features lists the vector extensions reported by the CPU that matter to
// the lane kernels.
func Features() []string {
	var f []string
	if cpu.X86.HasSSE2 {
		f = append(f, "sse2")
	}
	if cpu.X86.HasSSE42 {
		f = append(f, "sse4.2")
	}
	if cpu.X86.HasAVX {
		f = append(f, "avx")
	}
	if cpu.X86.HasAVX2 {
		f = append(f, "avx2")
	}
	if cpu.ARM64.HasASIMD {
		f = append(f, "asimd")
	}
	return f
}
