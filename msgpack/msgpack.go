// Package msgpack provides a MessagePack codec for name records.
package msgpack

import (
	"context"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/moniker"
)

// msgpackCodec implements moniker.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() moniker.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// EncodeName encodes n as a MessagePack record.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a MessagePack record into a Name.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
