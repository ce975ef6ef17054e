// Package bson provides a BSON codec for name records, suitable for storing
// names as MongoDB documents.
package bson

import (
	"context"

	"github.com/zoobzio/moniker"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements moniker.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() moniker.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document. v must be a struct, map or pointer
// to one.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// EncodeName encodes n as a BSON record document.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a BSON record document into a Name.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
