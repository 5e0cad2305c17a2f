//go:build !unix

package guard

// Alloc falls back to a heap buffer without guard pages.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, ErrSize
	}
	return &Region{buf: make([]byte, size)}, nil
}

func (r *Region) Close() error {
	r.buf = nil
	return nil
}
