package terminal

import (
	"os"
	"strconv"
)

// Size is the terminal size in character cells and, when the kernel reports
// it, pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int // 0 if unknown
	PixelH int // 0 if unknown
	CellW  int // 0 if unknown
	CellH  int // 0 if unknown
}

// GetSize returns the terminal size, trying stdout, then stderr, then the
// COLUMNS/LINES environment variables, then 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := sizeOf(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return sizeFromEnv(os.Getenv)
}

func (s *Size) deriveCells() {
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
}

func sizeFromEnv(getenv func(string) string) Size {
	return Size{
		Cols: envInt(getenv, "COLUMNS", 80),
		Rows: envInt(getenv, "LINES", 24),
	}
}

// envInt reads a positive integer from the environment, returning fallback
// when unset or invalid.
func envInt(getenv func(string) string, name string, fallback int) int {
	n, err := strconv.Atoi(getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
