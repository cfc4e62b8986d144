//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

func birthTime(_ string, stat os.FileInfo) (time.Time, bool) {
	st, ok := stat.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), true
}

func setBirthTime(path string, created time.Time) error {
	attrs := unix.Attrlist{
		Bitmapcount: unix.ATTR_BIT_MAP_COUNT,
		Commonattr:  unix.ATTR_CMN_CRTIME,
	}
	ts := unix.NsecToTimespec(created.UnixNano())
	buf := (*[unsafe.Sizeof(ts)]byte)(unsafe.Pointer(&ts))[:]
	return unix.Setattrlist(path, &attrs, buf, 0)
}
