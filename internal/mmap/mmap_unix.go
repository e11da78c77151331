//go:build !windows

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func Mmap(fd *os.File, write bool, offset int64, size int64) ([]byte, error) {
	prot := unix.PROT_READ
	if write {
		prot |= unix.PROT_WRITE

		fi, err := fd.Stat()
		if err != nil {
			return nil, err
		}
		if fi.Size() < offset+size {
			if err := fd.Truncate(offset + size); err != nil {
				return nil, fmt.Errorf("truncate: %s", err)
			}
		}
	}

	return unix.Mmap(int(fd.Fd()), offset, int(size), prot, unix.MAP_SHARED)
}

func Munmap(b []byte) error {
	return unix.Munmap(b)
}
