/*
Package shortcrypt turns byte strings into short, random looking text suitable for URLs and QR codes, and back again.

Note that this is NOT encryption in the security sense.
There is no integrity check: decrypting with the wrong key, or decrypting text that was altered, does NOT return an error.
It silently returns different bytes.
Only structurally invalid input (symbols outside the alphabet, impossible lengths, or a base out of range) is reported as an error.
This falls squarely under the obfuscation category, and it's useful for serial numbers, tokens, and identifiers where the plain value shouldn't be visible.

# How it works:

Encrypting produces a Cipher made of a 4 bit base and a body with the same length as the plaintext.
The base is chosen at random for each call, and selects one of 16 keystreams derived from the key.
Each plaintext byte is XORed with its keystream byte, then the body is shuffled along a key dependent path so that similar plaintexts don't produce similar bodies.

The text forms pack the base and body into a bit stream and encode it with either a URL safe alphabet or a QR code alphanumeric alphabet.
The result is only 4 bits (rounded up to a whole symbol) larger than the plaintext would be in the same alphabet.

# General guidelines:
  - Treat the key as a secret. Anyone with the key can reverse every output.
  - The same plaintext encrypts to one of 16 outputs, so equal inputs can still be linked by an observer with enough samples.
  - Use the Append variants when building larger strings like URLs to avoid an intermediate allocation.
  - Use WithEntropy to supply a deterministic randomness source in tests.
*/
package shortcrypt
