//go:build !unix

package terminal

import "github.com/charmbracelet/x/term"

func sizeOf(fd uintptr) Size {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}
	}
	return Size{Cols: w, Rows: h}
}
