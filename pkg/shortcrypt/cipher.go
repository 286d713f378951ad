package shortcrypt

import (
	"fmt"

	"github.com/saylorsolutions/shortcrypt/pkg/codec"
)

// MaxBase is the largest valid Cipher base.
const MaxBase = 1<<codec.BaseBits - 1

// Cipher is the raw result of encryption.
// Base only uses 4 bits, and Body is always the same length as the plaintext.
type Cipher struct {
	Base uint8
	Body []byte
}

func checkBase(base uint8) error {
	if base > MaxBase {
		return fmt.Errorf("%w: %d is greater than %d", ErrInvalidBase, base, MaxBase)
	}
	return nil
}

// Encrypt encrypts plaintext with a randomly chosen base.
func (sc *ShortCrypt) Encrypt(plaintext []byte) Cipher {
	base := sc.nextBase()
	return Cipher{Base: base, Body: sc.seal(base, plaintext)}
}

// EncryptWithBase encrypts plaintext with the given base instead of a random one.
// The output for a given key, base, and plaintext is always the same.
func (sc *ShortCrypt) EncryptWithBase(plaintext []byte, base uint8) (Cipher, error) {
	if err := checkBase(base); err != nil {
		return Cipher{}, err
	}
	return Cipher{Base: base, Body: sc.seal(base, plaintext)}, nil
}

// Decrypt recovers the plaintext from c.
// ErrInvalidBase is the only possible error. Using the wrong key is not detected.
func (sc *ShortCrypt) Decrypt(c Cipher) ([]byte, error) {
	out, err := sc.AppendDecrypt(make([]byte, 0, len(c.Body)), c)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendDecrypt appends the plaintext recovered from c to dst and returns the extended buffer.
// If an error is returned then dst is returned unchanged.
func (sc *ShortCrypt) AppendDecrypt(dst []byte, c Cipher) ([]byte, error) {
	if err := checkBase(c.Base); err != nil {
		return dst, err
	}
	return sc.open(dst, c.Base, c.Body), nil
}

func (sc *ShortCrypt) seal(base uint8, plaintext []byte) []byte {
	body := make([]byte, len(plaintext))
	sc.material.XORKeyStream(body, plaintext, base)
	for i, p := range sc.material.ShufflePath(base, body) {
		if i != p {
			body[i], body[p] = body[p], body[i]
		}
	}
	return body
}

func (sc *ShortCrypt) open(dst []byte, base uint8, body []byte) []byte {
	start := len(dst)
	dst = append(dst, body...)
	out := dst[start:]
	path := sc.material.ShufflePath(base, out)
	for i := len(path) - 1; i >= 0; i-- {
		if p := path[i]; p != i {
			out[i], out[p] = out[p], out[i]
		}
	}
	sc.material.XORKeyStream(out, out, base)
	return dst
}
