package shortcrypt

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLComponent(t *testing.T) {
	sc := newTestCrypt(t)
	text := sc.EncryptToURLComponent([]byte("articles"))
	assert.Len(t, text, 12)
	assert.Equal(t, url.PathEscape(text), text)

	plain, err := sc.DecryptURLComponent(text)
	assert.NoError(t, err)
	assert.Equal(t, "articles", string(plain))
}

func TestQRCodeAlphanumeric(t *testing.T) {
	sc := newTestCrypt(t)
	text := sc.EncryptToQRCodeAlphanumeric([]byte("articles"))
	assert.Len(t, text, 14)
	for _, r := range text {
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "Unexpected symbol %q", r)
	}

	plain, err := sc.DecryptQRCodeAlphanumeric(text)
	assert.NoError(t, err)
	assert.Equal(t, "articles", string(plain))
}

func TestText_Quick(t *testing.T) {
	sc := newTestCrypt(t)
	f := func(plain []byte) bool {
		fromURL, err := sc.DecryptURLComponent(sc.EncryptToURLComponent(plain))
		if err != nil || !bytes.Equal(plain, fromURL) {
			return false
		}
		fromQR, err := sc.DecryptQRCodeAlphanumeric(sc.EncryptToQRCodeAlphanumeric(plain))
		return err == nil && bytes.Equal(plain, fromQR)
	}
	assert.NoError(t, quick.Check(f, &quick.Config{MaxCount: 300}))
}

func TestText_Empty(t *testing.T) {
	sc := newTestCrypt(t)
	text := sc.EncryptToURLComponent(nil)
	assert.Len(t, text, 1)
	plain, err := sc.DecryptURLComponent(text)
	assert.NoError(t, err)
	assert.Empty(t, plain)

	text = sc.EncryptToQRCodeAlphanumeric([]byte{})
	assert.Len(t, text, 1)
	plain, err = sc.DecryptQRCodeAlphanumeric(text)
	assert.NoError(t, err)
	assert.Empty(t, plain)
}

func TestText_WithBase(t *testing.T) {
	for base := uint8(0); base <= MaxBase; base++ {
		sc := newTestCrypt(t, WithEntropy(bytes.NewReader([]byte{base, base})))
		expectedURL, err := sc.URLComponentWithBase([]byte("articles"), base)
		require.NoError(t, err)
		expectedQR, err := sc.QRCodeAlphanumericWithBase([]byte("articles"), base)
		require.NoError(t, err)

		assert.Equal(t, expectedURL, sc.EncryptToURLComponent([]byte("articles")))
		assert.Equal(t, expectedQR, sc.EncryptToQRCodeAlphanumeric([]byte("articles")))
	}

	sc := newTestCrypt(t)
	_, err := sc.URLComponentWithBase([]byte("a"), MaxBase+1)
	assert.ErrorIs(t, err, ErrInvalidBase)
	_, err = sc.QRCodeAlphanumericWithBase([]byte("a"), MaxBase+1)
	assert.ErrorIs(t, err, ErrInvalidBase)
}

func TestAppendURLComponent(t *testing.T) {
	const prefix = "https://magiclen.org/"
	sc := newTestCrypt(t, WithEntropy(bytes.NewReader([]byte{8, 8})))
	expected := sc.EncryptToURLComponent([]byte("articles"))
	out := sc.AppendURLComponent([]byte(prefix), []byte("articles"))
	assert.Equal(t, prefix+expected, string(out))

	plain, err := sc.AppendDecryptedURLComponent([]byte(prefix), expected)
	assert.NoError(t, err)
	assert.Equal(t, prefix+"articles", string(plain))
}

func TestAppendQRCodeAlphanumeric(t *testing.T) {
	const prefix = "HTTPS://MAGICLEN.ORG/"
	sc := newTestCrypt(t, WithEntropy(bytes.NewReader([]byte{3, 3})))
	expected := sc.EncryptToQRCodeAlphanumeric([]byte("articles"))
	out := sc.AppendQRCodeAlphanumeric([]byte(prefix), []byte("articles"))
	assert.Equal(t, prefix+expected, string(out))

	plain, err := sc.AppendDecryptedQRCodeAlphanumeric([]byte(prefix), expected)
	assert.NoError(t, err)
	assert.Equal(t, prefix+"articles", string(plain))
}

func TestText_Neg(t *testing.T) {
	sc := newTestCrypt(t)
	tests := map[string]struct {
		decrypt  func(string) ([]byte, error)
		text     string
		expected error
	}{
		"URL empty": {
			decrypt:  sc.DecryptURLComponent,
			text:     "",
			expected: ErrInvalidLength,
		},
		"URL bad symbol": {
			decrypt:  sc.DecryptURLComponent,
			text:     "2E87Wx52+Tvo",
			expected: ErrInvalidCharacter,
		},
		"URL bad length": {
			decrypt:  sc.DecryptURLComponent,
			text:     "2E87Wx52-Tv",
			expected: ErrInvalidLength,
		},
		"QR empty": {
			decrypt:  sc.DecryptQRCodeAlphanumeric,
			text:     "",
			expected: ErrInvalidLength,
		},
		"QR lower case": {
			decrypt:  sc.DecryptQRCodeAlphanumeric,
			text:     "3bhnnr45xzh8pu",
			expected: ErrInvalidCharacter,
		},
		"QR bad length": {
			decrypt:  sc.DecryptQRCodeAlphanumeric,
			text:     "AAAAAAAAAAAAA",
			expected: ErrInvalidLength,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tc.decrypt(tc.text)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	dst := []byte("keep")
	out, err := sc.AppendDecryptedURLComponent(dst, "!")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
	assert.Equal(t, "keep", string(out))
}

func TestText_ForeignAlphabet(t *testing.T) {
	sc := newTestCrypt(t)
	checked := 0
	for i := 0; i < 100; i++ {
		text := sc.EncryptToURLComponent([]byte("an identifier"))
		if strings.ToUpper(text) == text && !strings.ContainsAny(text, "-_0189") {
			continue
		}
		checked++
		_, err := sc.DecryptQRCodeAlphanumeric(text)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "URL text %q", text)
	}
	assert.Greater(t, checked, 0)
}
