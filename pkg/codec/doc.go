/*
Package codec packs a shortcrypt base and body into text.

# How it works:

The base occupies the first BaseBits bits, followed by every byte of the body, most significant bit first.
The bit stream is zero padded to a multiple of the symbol width, then each group of bits selects a symbol from the alphabet.

Two codecs are provided:
  - URL uses the 64 symbol base64url alphabet (A-Z, a-z, 0-9, '-', '_'), and never emits padding. Output may be used as a URL path segment without escaping.
  - QR uses the 32 symbol base32 alphabet (A-Z, 2-7). Every symbol is available in QR code alphanumeric mode, and lower case letters are never emitted or accepted.

Encoding never fails. Decoding rejects symbols outside the alphabet with ErrInvalidCharacter, and symbol counts that no body length could produce with ErrInvalidLength.
*/
package codec
