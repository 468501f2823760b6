package model

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedGrid is the cause of every grid definition parse failure
var ErrMalformedGrid = errors.New("malformed grid definition")

// ReadGrid parses a grid definition: a row count line, a column count line,
// then one line per row. Characters equal to alive mark living cells and any
// other character is dead. Characters past the column count are ignored.
func ReadGrid(r io.Reader, alive byte) (*Grid, error) {
	scanner := bufio.NewScanner(r)

	rows, err := readDimension(scanner, "row count")
	if err != nil {
		return nil, err
	}
	cols, err := readDimension(scanner, "column count")
	if err != nil {
		return nil, err
	}

	g := NewGrid(rows, cols)
	for row := range rows {
		line, ok := nextLine(scanner)
		if !ok {
			if err = scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "[ReadGrid] failed to read row %d", row)
			}
			return nil, errors.Wrapf(ErrMalformedGrid, "[ReadGrid] expected %d rows, got %d", rows, row)
		}
		if len(line) < cols {
			return nil, errors.Wrapf(ErrMalformedGrid, "[ReadGrid] row %d has %d cells, want %d", row, len(line), cols)
		}
		for col := range cols {
			g.cells[row][col] = line[col] == alive
		}
	}

	return g, nil
}

// LoadGrid reads a grid definition from the named file
func LoadGrid(filename string, alive byte) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := ReadGrid(f, alive)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to parse file: %+v", filename)
	}
	return g, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(scanner.Text(), "\r"), true
}

func readDimension(scanner *bufio.Scanner, name string) (int, error) {
	line, ok := nextLine(scanner)
	if !ok {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrapf(err, "[ReadGrid] failed to read %s", name)
		}
		return 0, errors.Wrapf(ErrMalformedGrid, "[ReadGrid] missing %s", name)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedGrid, "[ReadGrid] %s %q is not an integer", name, line)
	}
	if n < 0 {
		return 0, errors.Wrapf(ErrMalformedGrid, "[ReadGrid] %s %d is negative", name, n)
	}
	return n, nil
}
