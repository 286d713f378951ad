package shortcrypt

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

func cipherHeader(base *uint8, length *uint64) bin.Mapper {
	return bin.MapSequence(
		bin.Byte(base),
		bin.Int(length),
	)
}

// MarshalBinary writes the base, body length, and body in big endian order.
func (c Cipher) MarshalBinary() ([]byte, error) {
	if err := checkBase(c.Base); err != nil {
		return nil, err
	}
	var (
		buf    bytes.Buffer
		base   = c.Base
		length = uint64(len(c.Body))
	)
	if err := cipherHeader(&base, &length).Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	buf.Write(c.Body)
	return buf.Bytes(), nil
}

// UnmarshalBinary reads a Cipher written by MarshalBinary.
func (c *Cipher) UnmarshalBinary(data []byte) error {
	var (
		base   uint8
		length uint64
		r      = bytes.NewReader(data)
	)
	if err := cipherHeader(&base, &length).Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: failed to read cipher header: %v", ErrInvalidData, err)
	}
	if err := checkBase(base); err != nil {
		return err
	}
	if length != uint64(r.Len()) {
		return fmt.Errorf("%w: header declares %d body bytes, but %d remain", ErrInvalidData, length, r.Len())
	}
	c.Base = base
	c.Body = make([]byte, length)
	copy(c.Body, data[len(data)-r.Len():])
	return nil
}
