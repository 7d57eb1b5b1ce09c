package phpserialize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/forminator-backfill/internal/common"
)

// DecodeString strictly inverts EncodeString: it accepts exactly one
// s:{n}:"{content}" value, verifies that the declared length equals the byte
// count of the content and that the closing quote sits right after it, and
// returns the content. Anything else fails with common.ErrMalformedValue.
func DecodeString(v string) (string, error) {
	r := &reader{s: v}
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	if r.pos != len(v) {
		return "", fmt.Errorf("%w: trailing data at offset %d", common.ErrMalformedValue, r.pos)
	}
	return s, nil
}

// Validate reads v as one serialized value of the subset this package writes
// (strings, decimals, aggregates of string-keyed pairs) and reports the first
// inconsistency: a length prefix that does not match the following byte
// count, an element count that does not match the pairs present, or an
// unparseable decimal. A nil return means a matching decoder round-trips v.
func Validate(v string) error {
	r := &reader{s: v}
	if err := r.readValue(); err != nil {
		return err
	}
	if r.pos != len(v) {
		return fmt.Errorf("%w: trailing data at offset %d", common.ErrMalformedValue, r.pos)
	}
	return nil
}

// reader walks a serialized value byte by byte. Positions in errors are byte
// offsets into the original text.
type reader struct {
	s   string
	pos int
}

func (r *reader) fail(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at offset %d", common.ErrMalformedValue, msg, r.pos)
}

func (r *reader) expect(lit string) error {
	if !strings.HasPrefix(r.s[r.pos:], lit) {
		return r.fail("expected %q", lit)
	}
	r.pos += len(lit)
	return nil
}

func (r *reader) readValue() error {
	if r.pos >= len(r.s) {
		return r.fail("unexpected end of value")
	}
	switch r.s[r.pos] {
	case 's':
		_, err := r.readString()
		return err
	case 'd':
		return r.readDecimal()
	case 'a':
		return r.readArray()
	default:
		return r.fail("unknown tag %q", r.s[r.pos])
	}
}

// readString consumes s:{n}:"{content}" and returns the content. The length
// prefix is trusted to locate the closing quote, then checked against it.
func (r *reader) readString() (string, error) {
	if err := r.expect("s:"); err != nil {
		return "", err
	}
	n, err := r.readInt()
	if err != nil {
		return "", err
	}
	if err := r.expect(`:"`); err != nil {
		return "", err
	}
	if r.pos+n > len(r.s) {
		return "", r.fail("declared length %d overruns value", n)
	}
	content := r.s[r.pos : r.pos+n]
	r.pos += n
	if err := r.expect(`"`); err != nil {
		return "", r.fail("declared length %d does not end at a closing quote", n)
	}
	return content, nil
}

// readDecimal consumes d:{number}; the number runs to the next separator and
// must parse as a float.
func (r *reader) readDecimal() error {
	if err := r.expect("d:"); err != nil {
		return err
	}
	end := r.pos
	for end < len(r.s) && r.s[end] != ';' && r.s[end] != '}' {
		end++
	}
	num := r.s[r.pos:end]
	if _, err := strconv.ParseFloat(num, 64); err != nil {
		return r.fail("bad decimal %q", num)
	}
	r.pos = end
	return nil
}

// readArray consumes a:{n}:{pairs} and requires exactly n key/value pairs,
// each key a string and each element followed by a semicolon.
func (r *reader) readArray() error {
	if err := r.expect("a:"); err != nil {
		return err
	}
	n, err := r.readInt()
	if err != nil {
		return err
	}
	if err := r.expect(":{"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := r.readString(); err != nil {
			return err
		}
		if err := r.expect(";"); err != nil {
			return err
		}
		if err := r.readValue(); err != nil {
			return err
		}
		if err := r.expect(";"); err != nil {
			return err
		}
	}
	return r.expect("}")
}

func (r *reader) readInt() (int, error) {
	start := r.pos
	for r.pos < len(r.s) && r.s[r.pos] >= '0' && r.s[r.pos] <= '9' {
		r.pos++
	}
	if r.pos == start {
		return 0, r.fail("expected a length")
	}
	n, err := strconv.Atoi(r.s[start:r.pos])
	if err != nil {
		return 0, r.fail("bad length %q", r.s[start:r.pos])
	}
	return n, nil
}
