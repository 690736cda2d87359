package pointset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TokenReader reads whitespace separated tokens, the way judge-style input
// is laid out.
type TokenReader struct {
	sc   *bufio.Scanner
	read int
}

func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &TokenReader{sc: sc}
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *TokenReader) Next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	t.read++
	return t.sc.Text(), nil
}

func (t *TokenReader) Int64() (int64, error) {
	tok, err := t.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %v", ErrFormat, t.read, err)
	}
	return v, nil
}

// maxPrealloc caps the capacity reserved from a count read off the input;
// the slice grows past it only as tokens actually arrive.
const maxPrealloc = 1 << 16

// Int64s reads exactly n integers.
func (t *TokenReader) Int64s(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative integer count %d", ErrFormat, n)
	}
	out := make([]int64, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		v, err := t.Int64()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: expected %d integers, found %d", ErrFormat, n, i)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
