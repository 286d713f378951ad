package codec

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

const (
	// BaseBits is the width of the base field at the start of the packed bit stream.
	BaseBits = 4

	baseMask      = 1<<BaseBits - 1
	invalidSymbol = 0xff

	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	qrAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidLength    = errors.New("invalid length")
)

var (
	// URL encodes with a URL and file name safe alphabet.
	URL = newCodec("URL", urlAlphabet)
	// QR encodes with an alphabet compatible with QR code alphanumeric mode.
	QR = newCodec("QR", qrAlphabet)
)

// Codec translates between a packed base and body and text in a single alphabet.
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	name      string
	alphabet  string
	width     uint
	decodeMap [256]byte
}

func newCodec(name, alphabet string) *Codec {
	width := uint(bits.Len(uint(len(alphabet)))) - 1
	if len(alphabet) != 1<<width {
		panic(fmt.Sprintf("codec: alphabet length %d is not a power of 2", len(alphabet)))
	}
	c := &Codec{
		name:     name,
		alphabet: alphabet,
		width:    width,
	}
	for i := range c.decodeMap {
		c.decodeMap[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c.decodeMap[alphabet[i]] = byte(i)
	}
	return c
}

func (c *Codec) Name() string {
	return c.name
}

// Alphabet returns the symbols used by this Codec, ordered by value.
func (c *Codec) Alphabet() string {
	return c.alphabet
}

// Width is the number of bits carried by each symbol.
func (c *Codec) Width() int {
	return int(c.width)
}

// EncodedLen returns the number of symbols used to encode a body of n bytes.
func (c *Codec) EncodedLen(n int) int {
	w := int(c.width)
	return (BaseBits + 8*n + w - 1) / w
}

// DecodedLen returns the body length held by text of the given symbol count.
func (c *Codec) DecodedLen(symbols int) (int, error) {
	if symbols <= 0 {
		return 0, fmt.Errorf("%w: %s text is empty", ErrInvalidLength, c.name)
	}
	n := (symbols*int(c.width) - BaseBits) / 8
	if c.EncodedLen(n) != symbols {
		return 0, fmt.Errorf("%w: %d symbols can't hold a %s packed body", ErrInvalidLength, symbols, c.name)
	}
	return n, nil
}

// Encode returns the text form of base and body.
// Only the low BaseBits bits of base are used.
func (c *Codec) Encode(base uint8, body []byte) string {
	return string(c.AppendEncode(make([]byte, 0, c.EncodedLen(len(body))), base, body))
}

// AppendEncode appends the text form of base and body to dst and returns the extended buffer.
func (c *Codec) AppendEncode(dst []byte, base uint8, body []byte) []byte {
	w := &symbolWriter{
		dst:      slices.Grow(dst, c.EncodedLen(len(body))),
		alphabet: c.alphabet,
		width:    c.width,
	}
	w.write(uint32(base&baseMask), BaseBits)
	for _, b := range body {
		w.write(uint32(b), 8)
	}
	w.flush()
	return w.dst
}

// Decode recovers the base and body from text produced by Encode or AppendEncode.
func (c *Codec) Decode(text string) (base uint8, body []byte, err error) {
	for i := 0; i < len(text); i++ {
		if c.decodeMap[text[i]] == invalidSymbol {
			return 0, nil, fmt.Errorf("%w: %q at offset %d is not in the %s alphabet", ErrInvalidCharacter, text[i], i, c.name)
		}
	}
	n, err := c.DecodedLen(len(text))
	if err != nil {
		return 0, nil, err
	}

	var (
		acc      uint32
		nbits    uint
		haveBase bool
	)
	body = make([]byte, 0, n)
	for i := 0; i < len(text); i++ {
		acc = acc<<c.width | uint32(c.decodeMap[text[i]])
		nbits += c.width
		if !haveBase && nbits >= BaseBits {
			nbits -= BaseBits
			base = uint8(acc >> nbits)
			acc &= 1<<nbits - 1
			haveBase = true
		}
		for nbits >= 8 && len(body) < n {
			nbits -= 8
			body = append(body, byte(acc>>nbits))
			acc &= 1<<nbits - 1
		}
	}
	if acc != 0 {
		return 0, nil, fmt.Errorf("%w: final %s symbol %q has non-zero padding bits", ErrInvalidCharacter, c.name, text[len(text)-1])
	}
	return base, body, nil
}

// symbolWriter accumulates bits MSB first and emits a symbol for every complete group of width bits.
type symbolWriter struct {
	dst      []byte
	alphabet string
	width    uint
	acc      uint32
	nbits    uint
}

func (w *symbolWriter) write(v uint32, n uint) {
	w.acc = w.acc<<n | v
	w.nbits += n
	for w.nbits >= w.width {
		w.nbits -= w.width
		w.dst = append(w.dst, w.alphabet[w.acc>>w.nbits])
		w.acc &= 1<<w.nbits - 1
	}
}

func (w *symbolWriter) flush() {
	if w.nbits > 0 {
		w.dst = append(w.dst, w.alphabet[w.acc<<(w.width-w.nbits)])
		w.acc, w.nbits = 0, 0
	}
}
