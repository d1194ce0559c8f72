package spectra

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrNoColumns is returned when the header names no column.
	ErrNoColumns = errors.New("spectra: no columns")
	// ErrRowLength is returned when a data row has the wrong field count.
	ErrRowLength = errors.New("spectra: wrong number of fields")
)

// whitespace marks files whose fields are separated by runs of blanks.
const whitespace rune = ' '

// LoadFile reads the delimited text file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// Read parses a header row followed by numeric rows. The delimiter is
// taken from the header: tab, semicolon or comma, otherwise whitespace.
// Blank cells become NaN. A header with no data rows gives an empty table.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	header := firstLine(data)
	if strings.TrimSpace(header) == "" {
		return nil, ErrNoColumns
	}
	delim := sniffDelimiter(header)

	var records [][]string
	var lines []int
	if delim == whitespace {
		records, lines, err = splitFields(data)
	} else {
		records, lines, err = readDelimited(data, delim)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoColumns
	}
	names := headerNames(records[0])

	columns := make([][]float64, len(names))
	for i := range columns {
		columns[i] = make([]float64, 0, len(records)-1)
	}
	for r, rec := range records[1:] {
		line := lines[r+1]
		if len(rec) != len(names) {
			return nil, fmt.Errorf("line %d: %d fields, want %d: %w", line, len(rec), len(names), ErrRowLength)
		}
		for c, cell := range rec {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, names[c], err)
			}
			columns[c] = append(columns[c], v)
		}
	}

	return NewTable(names, columns)
}

func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimRight(string(data), "\r")
}

// sniffDelimiter picks the separator that occurs in the header line.
func sniffDelimiter(header string) rune {
	for _, d := range []rune{'\t', ';', ','} {
		if strings.ContainsRune(header, d) {
			return d
		}
	}
	return whitespace
}

func readDelimited(data []byte, delim rune) ([][]string, []int, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := cr.FieldPos(0)
		records = append(records, rec)
		lines = append(lines, line)
	}
	return records, lines, nil
}

// maxLine bounds one line of a whitespace-separated file.
const maxLine = 16 * 1024 * 1024

func splitFields(data []byte) ([][]string, []int, error) {
	var records [][]string
	var lines []int
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		records = append(records, fields)
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("line %d: %w", n+1, err)
	}
	return records, lines, nil
}

func headerNames(rec []string) []string {
	names := make([]string, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		names[i] = name
	}
	return names
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	return v, nil
}
