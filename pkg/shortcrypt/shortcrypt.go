package shortcrypt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/saylorsolutions/shortcrypt/pkg/codec"
	"github.com/saylorsolutions/shortcrypt/pkg/keymat"
)

var (
	ErrEmptyKey         = keymat.ErrEmptyKey
	ErrInvalidCharacter = codec.ErrInvalidCharacter
	ErrInvalidLength    = codec.ErrInvalidLength
	ErrInvalidBase      = errors.New("invalid base")
	ErrInvalidData      = errors.New("unable to use input data")
)

// ShortCrypt binds key material derived from a single key to the encryption and encoding operations.
// It's safe for concurrent use.
type ShortCrypt struct {
	material *keymat.Material

	entropyMux sync.Mutex
	entropy    io.Reader
}

type Opt = func(*ShortCrypt) error

// WithEntropy sets the source used to pick a random base for each encryption.
// Reads are serialized, so the reader doesn't need to be safe for concurrent use.
// If a read fails then the encrypting call panics, the same as it would for an allocation failure.
func WithEntropy(r io.Reader) Opt {
	return func(sc *ShortCrypt) error {
		if r == nil {
			return errors.New("nil entropy source")
		}
		sc.entropy = r
		return nil
	}
}

// New creates a ShortCrypt for the given key.
// The same key always produces instances that can decrypt each other's output.
// By default, bases are chosen using crypto/rand.
func New(key string, opts ...Opt) (*ShortCrypt, error) {
	material, err := keymat.Derive([]byte(key))
	if err != nil {
		return nil, err
	}
	sc := &ShortCrypt{
		material: material,
		entropy:  rand.Reader,
	}
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func (sc *ShortCrypt) nextBase() uint8 {
	var buf [1]byte
	sc.entropyMux.Lock()
	_, err := io.ReadFull(sc.entropy, buf[:])
	sc.entropyMux.Unlock()
	if err != nil {
		panic(fmt.Errorf("shortcrypt: failed to read entropy: %w", err))
	}
	return buf[0] & MaxBase
}
