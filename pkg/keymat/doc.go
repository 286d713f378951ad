/*
Package keymat derives the key material used by shortcrypt from a caller provided key string.

# How it works:

The key is expanded with HKDF-SHA256 into two independent 32 byte keys.
The first drives a ChaCha20 keystream, and the second seeds the shuffle path used to diffuse cipher bodies.

A keystream is selected by a base value in the range [0, Bases).
Each base uses its own nonce, so the same key yields Bases unrelated keystreams.
The first TableSize bytes of every keystream are computed once by Derive and kept in the Material, longer inputs continue the same stream on demand.

# Important note:

A Material is immutable once Derive returns, so it may be shared by any number of goroutines without locking.
The same key string always yields the same Material.
*/
package keymat
