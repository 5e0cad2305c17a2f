//go:build unix

package guard

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps size usable bytes between two PROT_NONE pages. The buffer ends
// exactly at the trailing guard page.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, ErrSize
	}

	page := unix.Getpagesize()
	data := (size + page - 1) / page * page
	total := data + 2*page

	m, err := unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("guard: mmap %d bytes: %w", total, err)
	}
	if err := unix.Mprotect(m[:page], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(m)
		return nil, fmt.Errorf("guard: protect leading page: %w", err)
	}
	if err := unix.Mprotect(m[page+data:], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(m)
		return nil, fmt.Errorf("guard: protect trailing page: %w", err)
	}

	end := page + data
	return &Region{
		buf:     m[end-size : end : end],
		mapping: m,
	}, nil
}

// Close unmaps the region. The buffer must not be used afterwards.
func (r *Region) Close() error {
	r.buf = nil
	if r.mapping == nil {
		return nil
	}
	m := r.mapping
	r.mapping = nil
	if err := unix.Munmap(m); err != nil {
		return fmt.Errorf("guard: munmap: %w", err)
	}
	return nil
}
