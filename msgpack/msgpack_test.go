package msgpack

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/moniker"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/msgpack")
	}
}

func TestMarshalUnmarshalRecord(t *testing.T) {
	c := New()

	original := moniker.Record{Kind: moniker.KindString, Delimiter: "/", Data: `usr/lo\/cal/bin`}

	data, err := c.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored moniker.Record
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestEncodeDecodeName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		build func() (moniker.Name, error)
	}{
		{"array", func() (moniker.Name, error) {
			return moniker.NewArrayName([]string{"oss", "cs", "fau", "de"})
		}},
		{"string", func() (moniker.Name, error) {
			return moniker.NewStringName("oss.cs.fau.de")
		}},
		{"masked components", func() (moniker.Name, error) {
			return moniker.NewArrayName([]string{"a.b", `c\d`, ""})
		}},
		{"custom delimiter", func() (moniker.Name, error) {
			return moniker.NewArrayName([]string{"usr", "local"}, moniker.WithDelimiter('/'))
		}},
		{"empty", func() (moniker.Name, error) {
			return moniker.NewStringName("", moniker.WithDelimiter('#'))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build()
			if err != nil {
				t.Fatalf("build error: %v", err)
			}

			data, err := EncodeName(ctx, n)
			if err != nil {
				t.Fatalf("EncodeName() error: %v", err)
			}

			restored, err := DecodeName(ctx, data)
			if err != nil {
				t.Fatalf("DecodeName() error: %v", err)
			}

			if !restored.IsEqual(n) {
				t.Errorf("DecodeName() = %q, want %q", restored, n)
			}
			if restored.Kind() != n.Kind() {
				t.Errorf("Kind() = %q, want %q", restored.Kind(), n.Kind())
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var r moniker.Record
	err := c.Unmarshal([]byte("\xc1"), &r)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestDecodeNameRejectsBadRecord(t *testing.T) {
	c := New()

	data, err := c.Marshal(&moniker.Record{Kind: moniker.KindArray, Delimiter: ".", Data: `a\`})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	_, err = DecodeName(context.Background(), data)
	if err == nil {
		t.Fatal("DecodeName() should reject an invalid record")
	}
	if !errors.Is(err, moniker.ErrUnmarshal) {
		t.Errorf("expected ErrUnmarshal, got %v", err)
	}
	if !errors.Is(err, moniker.ErrIllegalArgument) {
		t.Errorf("expected ErrIllegalArgument, got %v", err)
	}
}
