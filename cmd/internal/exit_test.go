package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatal(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	origOut, origExit := Stderr, exit
	defer func() {
		Stderr, exit = origOut, origExit
	}()
	Stderr = &buf
	exit = func(c int) {
		code = c
	}

	Echo("plain %d", 1)
	Fatal("failed: %s\n", "reason")
	assert.Equal(t, "plain 1\nfailed: reason\n", buf.String())
	assert.Equal(t, 1, code)
}
