// Package compress provides the codecs used for the article sections column.
// The codec name is persisted next to the payload so rows written under a
// different configuration stay readable.
package compress

import "fmt"

type Compress interface {
	Name() string
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// ForName resolves a persisted or configured codec name. The empty name means
// no compression.
func ForName(name string) (Compress, error) {
	switch name {
	case "", "nop":
		return NewNop(), nil
	case "gzip":
		return NewGZip(), nil
	case "brotli":
		return NewBrotli(), nil
	case "lz4":
		return NewLZ4(), nil
	default:
		return nil, fmt.Errorf("unknown compression codec %q", name)
	}
}

type Nop struct {
}

func NewNop() Nop {
	return Nop{}
}

func (n Nop) Name() string {
	return "nop"
}

func (n Nop) Encode(data []byte) ([]byte, error) {
	return data, nil
}

func (n Nop) Decode(data []byte) ([]byte, error) {
	return data, nil
}
