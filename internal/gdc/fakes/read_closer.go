package fakes

import (
	"io"
	"strings"
)

func NewReadCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
