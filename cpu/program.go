package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Line represents a line of source with the bytes it generated.
type Line struct {
	LineNo    int      // Source line number, starting at 1.
	Address   int      // Memory address of the first byte.
	Words     []string // Source words, for listings.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label to link into the last byte, if any.
}

// Program is a memory image, annotated with its source lines.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug finds the source line that generated the byte at an address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Size returns the extent of the memory image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Address+len(line.Bytes))
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Size())
	for address, value := range prog.Bytes() {
		bins[address] = value
	}

	return
}

// Bytes iterates over every byte of the program and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Address+n, value) {
					return
				}
			}
		}
	}
}

// WriteLs8 writes the program in the .ls8 text format, one binary literal
// per line, with the source words as comments.
func (prog *Program) WriteLs8(w io.Writer) (err error) {
	next := 0
	for _, line := range prog.Lines {
		for ; next < line.Address; next++ {
			_, err = fmt.Fprintf(w, "%08b\n", 0)
			if err != nil {
				return
			}
		}
		for n, value := range line.Bytes {
			text := fmt.Sprintf("%08b", value)
			if n == 0 && len(line.Words) != 0 {
				text += " # " + strings.Join(line.Words, " ")
			}
			_, err = fmt.Fprintln(w, text)
			if err != nil {
				return
			}
			next++
		}
	}

	return
}
