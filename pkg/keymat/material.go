package keymat

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const (
	// BaseBits is the width of a base value in bits.
	BaseBits = 4
	// Bases is the number of distinct keystreams available for a key.
	Bases = 1 << BaseBits
	// TableSize is the length of the keystream prefix precomputed for each base.
	TableSize = 64

	shuffleKeySize = 32
)

var (
	ErrEmptyKey = errors.New("cannot use an empty key")

	derivationInfo = []byte("shortcrypt key material v1")
)

// Material is the immutable key schedule for a single key.
type Material struct {
	streamKey  [chacha20.KeySize]byte
	shuffleKey [shuffleKeySize]byte
	table      [Bases][TableSize]byte
}

// Derive expands key into a new Material.
// The only error condition is an empty key.
func Derive(key []byte) (*Material, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	m := new(Material)
	r := hkdf.New(sha256.New, key, nil, derivationInfo)
	if _, err := io.ReadFull(r, m.streamKey[:]); err != nil {
		return nil, fmt.Errorf("failed to expand stream key: %w", err)
	}
	if _, err := io.ReadFull(r, m.shuffleKey[:]); err != nil {
		return nil, fmt.Errorf("failed to expand shuffle key: %w", err)
	}
	for base := 0; base < Bases; base++ {
		row := m.table[base][:]
		m.stream(uint8(base)).XORKeyStream(row, row)
	}
	return m, nil
}

func (m *Material) stream(base uint8) *chacha20.Cipher {
	var nonce [chacha20.NonceSize]byte
	nonce[len(nonce)-1] = base
	c, err := chacha20.NewUnauthenticatedCipher(m.streamKey[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return c
}

func checkBase(base uint8) {
	if base >= Bases {
		panic(fmt.Sprintf("keymat: base %d out of range [0, %d)", base, Bases))
	}
}

// XORKeyStream XORs each byte of src with the keystream selected by base, writing the result to dst.
// Position i of src always uses keystream byte i, so applying it twice restores the input.
// dst and src may overlap exactly. It panics if dst is shorter than src or base is out of range.
func (m *Material) XORKeyStream(dst, src []byte, base uint8) {
	checkBase(base)
	if len(dst) < len(src) {
		panic("keymat: output smaller than input")
	}
	if len(src) <= TableSize {
		ks := m.table[base][:len(src)]
		for i, b := range src {
			dst[i] = b ^ ks[i]
		}
		return
	}
	m.stream(base).XORKeyStream(dst[:len(src)], src)
}

// Keystream returns the first n keystream bytes for base.
func (m *Material) Keystream(base uint8, n int) []byte {
	out := make([]byte, n)
	m.XORKeyStream(out, out, base)
	return out
}

// ShufflePath returns the swap targets used to diffuse a body of len(body) bytes.
// Element i of the path is the index swapped with i, and is always in [0, len(body)).
//
// The path only depends on the key, base, and the multiset of bytes in body.
// Swapping bytes of body around doesn't change the path, which is what allows it to be recomputed from a shuffled body.
// A body shorter than 2 bytes has no path.
func (m *Material) ShufflePath(base uint8, body []byte) []int {
	checkBase(base)
	n := len(body)
	if n < 2 {
		return nil
	}
	var (
		fold = base
		sum  = uint64(base)
		seed [9]byte
	)
	for _, b := range body {
		fold ^= b
		sum += uint64(b)
	}
	seed[0] = fold
	binary.BigEndian.PutUint64(seed[1:], sum)
	digest := blake2b.Sum256(seed[:])

	c, err := chacha20.NewUnauthenticatedCipher(m.shuffleKey[:], digest[:chacha20.NonceSize])
	if err != nil {
		panic(err)
	}
	raw := make([]byte, 4*n)
	c.XORKeyStream(raw, raw)

	path := make([]int, n)
	for i := range path {
		path[i] = int(binary.BigEndian.Uint32(raw[4*i:]) % uint32(n))
	}
	return path
}
