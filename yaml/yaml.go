// Package yaml provides a YAML codec for name records.
package yaml

import (
	"context"

	"github.com/zoobzio/moniker"
	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

// New returns a YAML codec.
func New() moniker.Codec {
	return &yamlCodec{}
}

func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// EncodeName encodes n as a YAML record.
func EncodeName(ctx context.Context, n moniker.Name) ([]byte, error) {
	return moniker.Encode(ctx, New(), n)
}

// DecodeName decodes a YAML record into a Name.
func DecodeName(ctx context.Context, data []byte) (moniker.Name, error) {
	return moniker.Decode(ctx, New(), data)
}
