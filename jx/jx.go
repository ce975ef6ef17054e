// Package jx provides a streaming JSON codec built on go-faster/jx. It
// encodes values that implement Marshaler and decodes into values that
// implement Unmarshaler, avoiding reflection. moniker.Record implements both.
package jx

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-faster/jx"
	"github.com/zoobzio/moniker"
)

// Marshaler writes itself to a jx.Encoder.
type Marshaler interface {
	MarshalJX(e *jx.Encoder)
}

// Unmarshaler reads itself from a jx.Decoder.
type Unmarshaler interface {
	UnmarshalJX(d *jx.Decoder) error
}

// ErrInvalidUTF8 is returned for records JSON strings cannot carry unchanged.
var ErrInvalidUTF8 = errors.New("jx: record data is not valid UTF-8")

type jxCodec struct{}

// New returns a jx JSON codec.
func New() moniker.Codec {
	return &jxCodec{}
}

func (c *jxCodec) ContentType() string {
	return "application/json"
}

func (c *jxCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Marshaler)
	if !ok {
		return nil, fmt.Errorf("jx: %T does not implement MarshalJX", v)
	}
	switch r := v.(type) {
	case *moniker.Record:
		if !validRecord(*r) {
			return nil, ErrInvalidUTF8
		}
	case moniker.Record:
		if !validRecord(r) {
			return nil, ErrInvalidUTF8
		}
	}
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	m.MarshalJX(e)
	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())
	return out, nil
}

func validRecord(r moniker.Record) bool {
	return utf8.ValidString(r.Data) && utf8.ValidString(r.Delimiter)
}

func (c *jxCodec) Unmarshal(data []byte, v any) error {
	u, ok := v.(Unmarshaler)
	if !ok {
		return fmt.Errorf("jx: %T does not implement UnmarshalJX", v)
	}
	return u.UnmarshalJX(jx.DecodeBytes(data))
}

// EncodeName encodes n as a JSON record without reflection.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a JSON record into a Name without reflection.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
