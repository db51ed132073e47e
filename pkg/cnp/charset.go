package cnp

import (
	"bytes"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	charsetMu sync.RWMutex
	charset   encoding.Encoding = charmap.ISO8859_1
)

// SetCharset changes the encoding used for every char* exchanged with
// the API. The default is ISO-8859-1.
func SetCharset(enc encoding.Encoding) {
	charsetMu.Lock()
	defer charsetMu.Unlock()
	charset = enc
}

func currentCharset() encoding.Encoding {
	charsetMu.RLock()
	defer charsetMu.RUnlock()
	return charset
}

// DecodeString converts a NUL terminated byte buffer to a Go string.
func DecodeString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := currentCharset().NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// EncodeString converts s to a NUL terminated byte buffer.
func EncodeString(s string) ([]byte, error) {
	b, err := currentCharset().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return append(b, 0), nil
}
