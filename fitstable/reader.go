package fitstable

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// FITS files are organized in fixed blocks of 36 80-byte keyword records.
const (
	blockSize = 2880
	cardSize  = 80
)

// ErrFormat is wrapped by all structural parse failures.
var ErrFormat = errors.New("invalid FITS structure")

// ReadFile reads all binary tables from a FITS file on disk.
// Gzip-compressed files (.fits.gz) are handled transparently.
func ReadFile(path string) ([]*BinTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read walks the HDUs of a FITS stream and returns every BINTABLE
// extension as a BinTable, in file order. Image HDUs are skipped. The
// stream may be gzip-compressed.
func Read(r io.Reader) ([]*BinTable, error) {
	br := bufio.NewReader(r)

	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		defer zr.Close()
		br = bufio.NewReader(zr)
	}

	var tables []*BinTable
	for {
		h, err := readHeader(br)
		if err == io.EOF {
			return tables, nil
		}
		if err != nil {
			return nil, err
		}

		if h.class() == "BINTABLE" {
			t, err := h.decodeBinTable(br)
			if err != nil {
				return nil, err
			}
			tables = append(tables, t)
			continue
		}

		if err := h.skipData(br); err != nil {
			return nil, err
		}
	}
}

// header holds the parsed keyword records of one HDU.
type header struct {
	keys map[string]any
}

func (h *header) intKey(name string) (int, bool) {
	v, ok := h.keys[name].(int)
	return v, ok
}

func (h *header) class() string {
	if _, ok := h.keys["SIMPLE"]; ok {
		return "SIMPLE"
	}
	if x, ok := h.keys["XTENSION"].(string); ok {
		return x
	}
	return ""
}

func (h *header) naxis() ([]int, error) {
	n, ok := h.intKey("NAXIS")
	if !ok {
		return nil, fmt.Errorf("%w: missing NAXIS", ErrFormat)
	}
	out := make([]int, n)
	for i := range out {
		v, ok := h.intKey(fmt.Sprintf("NAXIS%d", i+1))
		if !ok {
			return nil, fmt.Errorf("%w: missing NAXIS%d", ErrFormat, i+1)
		}
		out[i] = v
	}
	return out, nil
}

// dataSize returns the byte length of the HDU data section, before block
// padding: |BITPIX|/8 * GCOUNT * (PCOUNT + prod(NAXISn)).
func (h *header) dataSize() (int, error) {
	bitpix, ok := h.intKey("BITPIX")
	if !ok {
		return 0, fmt.Errorf("%w: missing BITPIX", ErrFormat)
	}
	axes, err := h.naxis()
	if err != nil {
		return 0, err
	}
	if len(axes) == 0 {
		return 0, nil
	}
	prod := 1
	for _, x := range axes {
		prod *= x
	}
	gcount, ok := h.intKey("GCOUNT")
	if !ok {
		gcount = 1
	}
	pcount, ok := h.intKey("PCOUNT")
	if !ok {
		pcount = 0
	}
	n := bitpix
	if n < 0 {
		n = -n
	}
	return n / 8 * gcount * (pcount + prod), nil
}

func (h *header) skipData(br *bufio.Reader) error {
	size, err := h.dataSize()
	if err != nil {
		return err
	}
	if size == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, br, int64(padded(size))); err != nil {
		return fmt.Errorf("%w: truncated data section", ErrFormat)
	}
	return nil
}

func padded(n int) int {
	if rem := n % blockSize; rem != 0 {
		return n + blockSize - rem
	}
	return n
}

// readHeader parses keyword blocks up to and including the END record.
// io.EOF is returned untouched when the stream ends cleanly between HDUs.
func readHeader(br *bufio.Reader) (*header, error) {
	h := &header{keys: make(map[string]any, 36)}
	block := make([]byte, blockSize)

	for {
		if _, err := io.ReadFull(br, block); err != nil {
			if err == io.EOF && len(h.keys) == 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("%w: truncated header", ErrFormat)
		}
		for i := 0; i < blockSize/cardSize; i++ {
			card := string(block[i*cardSize : (i+1)*cardSize])
			key := strings.TrimSpace(card[:8])
			if key == "END" {
				return h, nil
			}
			if card[8:10] != "= " {
				continue // comments, history, blank cards
			}
			value, err := parseValue(strings.TrimSpace(card[10:]))
			if err != nil {
				return nil, fmt.Errorf("%w: card %q: %v", ErrFormat, key, err)
			}
			h.keys[key] = value
		}
	}
}

// parseValue decodes a keyword value: quoted string, logical T/F, integer
// or float. Trailing comments after / are dropped.
func parseValue(s string) (any, error) {
	if s == "" {
		return nil, nil
	}
	if s[0] == '\'' {
		end := strings.IndexByte(s[1:], '\'')
		if end < 0 {
			return nil, errors.New("unterminated string")
		}
		return strings.TrimRight(s[1:1+end], " "), nil
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch s {
	case "":
		return nil, nil
	case "T":
		return true, nil
	case "F":
		return false, nil
	}
	if strings.ContainsAny(s, ".DE") {
		s = strings.Replace(s, "D", "E", 1)
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return int(n), err
}

// field describes one BINTABLE column: TTYPEn name, TFORMn type code and
// repeat count, and its byte offset within a row.
type field struct {
	name   string
	code   byte
	repeat int
	offset int
}

var fieldSizes = map[byte]int{
	'L': 1, 'B': 1, 'A': 1,
	'I': 2,
	'J': 4, 'E': 4,
	'K': 8, 'D': 8,
}

func parseForm(form string) (code byte, repeat int, err error) {
	i := strings.IndexAny(form, "LBIJKEDA")
	if i < 0 {
		return 0, 0, fmt.Errorf("unsupported TFORM %q", form)
	}
	repeat = 1
	if i > 0 {
		r, err := strconv.Atoi(form[:i])
		if err != nil {
			return 0, 0, fmt.Errorf("bad repeat in TFORM %q", form)
		}
		repeat = r
	}
	return form[i], repeat, nil
}

func (h *header) decodeBinTable(br *bufio.Reader) (*BinTable, error) {
	axes, err := h.naxis()
	if err != nil {
		return nil, err
	}
	if len(axes) != 2 {
		return nil, fmt.Errorf("%w: BINTABLE NAXIS != 2", ErrFormat)
	}
	rowBytes, nrows := axes[0], axes[1]

	tfields, ok := h.intKey("TFIELDS")
	if !ok {
		return nil, fmt.Errorf("%w: missing TFIELDS", ErrFormat)
	}

	fields := make([]field, 0, tfields)
	offset := 0
	for i := 1; i <= tfields; i++ {
		form, ok := h.keys[fmt.Sprintf("TFORM%d", i)].(string)
		if !ok {
			return nil, fmt.Errorf("%w: missing TFORM%d", ErrFormat, i)
		}
		code, repeat, err := parseForm(strings.TrimSpace(form))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		name, ok := h.keys[fmt.Sprintf("TTYPE%d", i)].(string)
		if !ok {
			name = fmt.Sprintf("COL%d", i)
		}
		fields = append(fields, field{name: name, code: code, repeat: repeat, offset: offset})
		offset += fieldSizes[code] * repeat
	}
	if offset > rowBytes {
		return nil, fmt.Errorf("%w: row of %d bytes cannot hold %d field bytes", ErrFormat, rowBytes, offset)
	}

	size, err := h.dataSize()
	if err != nil {
		return nil, err
	}
	data := make([]byte, padded(size))
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("%w: truncated table data", ErrFormat)
	}

	columns := make([]Column, len(fields))
	for fi, f := range fields {
		values := make([]any, nrows)
		for row := 0; row < nrows; row++ {
			cell := data[row*rowBytes+f.offset:]
			values[row] = decodeCell(cell, f.code, f.repeat)
		}
		columns[fi] = Column{Name: f.name, Values: values}
	}
	return NewBinTable(columns)
}

// decodeCell decodes one cell. Repeat counts above one yield a typed slice,
// except for 'A' where the repeat is the string length.
func decodeCell(p []byte, code byte, repeat int) any {
	if code == 'A' {
		return strings.TrimRight(string(p[:repeat]), " \x00")
	}
	if repeat == 1 {
		return decodeScalar(p, code)
	}
	size := fieldSizes[code]
	switch code {
	case 'L':
		out := make([]bool, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(bool)
		}
		return out
	case 'B':
		out := make([]uint8, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(uint8)
		}
		return out
	case 'I':
		out := make([]int16, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(int16)
		}
		return out
	case 'J':
		out := make([]int32, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(int32)
		}
		return out
	case 'K':
		out := make([]int64, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(int64)
		}
		return out
	case 'E':
		out := make([]float32, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(float32)
		}
		return out
	case 'D':
		out := make([]float64, repeat)
		for i := range out {
			out[i] = decodeScalar(p[i*size:], code).(float64)
		}
		return out
	}
	return nil
}

// decodeScalar decodes one big-endian value; FITS only uses big-endian.
func decodeScalar(p []byte, code byte) any {
	switch code {
	case 'L':
		return p[0] == 'T'
	case 'B':
		return p[0]
	case 'I':
		return int16(binary.BigEndian.Uint16(p))
	case 'J':
		return int32(binary.BigEndian.Uint32(p))
	case 'K':
		return int64(binary.BigEndian.Uint64(p))
	case 'E':
		return math.Float32frombits(binary.BigEndian.Uint32(p))
	case 'D':
		return math.Float64frombits(binary.BigEndian.Uint64(p))
	}
	return nil
}
