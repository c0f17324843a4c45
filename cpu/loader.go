package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// Loader reads programs in the .ls8 text format: one 8-bit binary literal
// per line, with optional '#' comments. Blank lines are skipped.
type Loader struct {
	Verbose bool // If set, verbosely logs the loaded bytes.
}

// Parse parses an input stream into a Program. Either the whole input
// loads, or an error is returned and no Program is produced.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		text, comment, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value byte
		value, err = parseBinary(text)
		if err != nil {
			return
		}

		if address >= MEMORY_SIZE {
			err = errors.Join(ErrLoad, ErrProgramTooLarge, ErrAddress(address))
			return
		}

		if ld.Verbose {
			log.Printf("%02x: %08b", address, value)
		}

		var words []string
		if comment = strings.TrimSpace(comment); len(comment) != 0 {
			words = []string{comment}
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Bytes:   []byte{value},
		})
		address++
	}

	err = scanner.Err()
	if err != nil {
		err = errors.Join(ErrLoad, err)
		return
	}

	return
}

// parseBinary parses a binary literal of at most 8 digits.
func parseBinary(text string) (value byte, err error) {
	if len(text) > 8 {
		err = ErrParseBinary(text)
		return
	}

	v64, err := strconv.ParseUint(text, 2, 8)
	if err != nil {
		err = ErrParseBinary(text)
		return
	}

	value = byte(v64)
	return
}
