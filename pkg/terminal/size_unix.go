//go:build unix

package terminal

import "golang.org/x/sys/unix"

// sizeOf queries TIOCGWINSZ, which also carries pixel dimensions on
// terminals that fill them in.
func sizeOf(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	s := Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}
	s.deriveCells()
	return s
}
