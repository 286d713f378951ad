package shortcrypt

import (
	"github.com/saylorsolutions/shortcrypt/pkg/codec"
)

// EncryptToURLComponent encrypts plaintext and encodes it with the URL safe alphabet.
func (sc *ShortCrypt) EncryptToURLComponent(plaintext []byte) string {
	return string(sc.AppendURLComponent(nil, plaintext))
}

// AppendURLComponent is like EncryptToURLComponent, but appends the text to dst.
// This is useful for building a URL without allocating the component separately.
func (sc *ShortCrypt) AppendURLComponent(dst []byte, plaintext []byte) []byte {
	c := sc.Encrypt(plaintext)
	return codec.URL.AppendEncode(dst, c.Base, c.Body)
}

// URLComponentWithBase produces the same text as EncryptToURLComponent would when it picks the given base.
func (sc *ShortCrypt) URLComponentWithBase(plaintext []byte, base uint8) (string, error) {
	return sc.encodeWithBase(codec.URL, plaintext, base)
}

// DecryptURLComponent decodes and decrypts text produced by EncryptToURLComponent.
func (sc *ShortCrypt) DecryptURLComponent(text string) ([]byte, error) {
	return sc.decryptText(codec.URL, text)
}

// AppendDecryptedURLComponent is like DecryptURLComponent, but appends the plaintext to dst.
func (sc *ShortCrypt) AppendDecryptedURLComponent(dst []byte, text string) ([]byte, error) {
	return sc.appendDecryptedText(codec.URL, dst, text)
}

// EncryptToQRCodeAlphanumeric encrypts plaintext and encodes it with an alphabet compatible with QR code alphanumeric mode.
func (sc *ShortCrypt) EncryptToQRCodeAlphanumeric(plaintext []byte) string {
	return string(sc.AppendQRCodeAlphanumeric(nil, plaintext))
}

// AppendQRCodeAlphanumeric is like EncryptToQRCodeAlphanumeric, but appends the text to dst.
func (sc *ShortCrypt) AppendQRCodeAlphanumeric(dst []byte, plaintext []byte) []byte {
	c := sc.Encrypt(plaintext)
	return codec.QR.AppendEncode(dst, c.Base, c.Body)
}

// QRCodeAlphanumericWithBase produces the same text as EncryptToQRCodeAlphanumeric would when it picks the given base.
func (sc *ShortCrypt) QRCodeAlphanumericWithBase(plaintext []byte, base uint8) (string, error) {
	return sc.encodeWithBase(codec.QR, plaintext, base)
}

// DecryptQRCodeAlphanumeric decodes and decrypts text produced by EncryptToQRCodeAlphanumeric.
func (sc *ShortCrypt) DecryptQRCodeAlphanumeric(text string) ([]byte, error) {
	return sc.decryptText(codec.QR, text)
}

// AppendDecryptedQRCodeAlphanumeric is like DecryptQRCodeAlphanumeric, but appends the plaintext to dst.
func (sc *ShortCrypt) AppendDecryptedQRCodeAlphanumeric(dst []byte, text string) ([]byte, error) {
	return sc.appendDecryptedText(codec.QR, dst, text)
}

func (sc *ShortCrypt) encodeWithBase(cd *codec.Codec, plaintext []byte, base uint8) (string, error) {
	c, err := sc.EncryptWithBase(plaintext, base)
	if err != nil {
		return "", err
	}
	return cd.Encode(c.Base, c.Body), nil
}

func (sc *ShortCrypt) decryptText(cd *codec.Codec, text string) ([]byte, error) {
	base, body, err := cd.Decode(text)
	if err != nil {
		return nil, err
	}
	return sc.Decrypt(Cipher{Base: base, Body: body})
}

func (sc *ShortCrypt) appendDecryptedText(cd *codec.Codec, dst []byte, text string) ([]byte, error) {
	base, body, err := cd.Decode(text)
	if err != nil {
		return dst, err
	}
	return sc.AppendDecrypt(dst, Cipher{Base: base, Body: body})
}
