package moniker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is the persisted form of a Name. Data holds the masked data string
// produced by AsDataString, so the components survive any codec unchanged.
type Record struct {
	Kind      Kind   `json:"kind" yaml:"kind" msgpack:"kind" bson:"kind" xml:"kind,attr" validate:"required,oneof=array string"`
	Delimiter string `json:"delimiter" yaml:"delimiter" msgpack:"delimiter" bson:"delimiter" xml:"delimiter,attr" validate:"required,len=1"`
	Data      string `json:"data" yaml:"data" msgpack:"data" bson:"data" xml:"data"`
}

// NewRecord captures n as a Record.
func NewRecord(n Name) Record {
	return Record{
		Kind:      n.Kind(),
		Delimiter: string(n.Delimiter()),
		Data:      n.AsDataString(),
	}
}

// Name validates the record and rebuilds the Name it describes.
func (r Record) Name() (Name, error) {
	if err := validate.Struct(r); err != nil {
		return Name{}, violate(ErrIllegalArgument, "record", formatValidationErrors(err))
	}
	d, err := ParseDelimiter(r.Delimiter)
	if err != nil {
		return Name{}, err
	}
	n, err := NewStringName(r.Data, WithDelimiter(d))
	if err != nil {
		return Name{}, err
	}
	return n.Convert(r.Kind)
}

// MarshalJX encodes the record with a jx.Encoder.
func (r Record) MarshalJX(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("kind")
	e.Str(string(r.Kind))
	e.FieldStart("delimiter")
	e.Str(r.Delimiter)
	e.FieldStart("data")
	e.Str(r.Data)
	e.ObjEnd()
}

// UnmarshalJX decodes the record from a jx.Decoder. Unknown keys are skipped.
func (r *Record) UnmarshalJX(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "kind":
			v, err := d.Str()
			if err != nil {
				return err
			}
			r.Kind = Kind(v)
		case "delimiter":
			v, err := d.Str()
			if err != nil {
				return err
			}
			r.Delimiter = v
		case "data":
			v, err := d.Str()
			if err != nil {
				return err
			}
			r.Data = v
		default:
			return d.Skip()
		}
		return nil
	})
}

// Encode marshals n as a Record with the given codec.
func Encode(ctx context.Context, c Codec, n Name) ([]byte, error) {
	start := time.Now()
	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, c.ContentType(), n, len(retData), time.Since(start), retErr)
	}()

	rec := NewRecord(n)
	data, err := c.Marshal(&rec)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	retData = data
	return retData, nil
}

// Decode unmarshals a Record with the given codec and rebuilds its Name.
func Decode(ctx context.Context, c Codec, data []byte) (Name, error) {
	start := time.Now()
	var retErr error
	defer func() {
		emitDecodeComplete(ctx, c.ContentType(), len(data), time.Since(start), retErr)
	}()

	var rec Record
	if err := c.Unmarshal(data, &rec); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return Name{}, retErr
	}
	n, err := rec.Name()
	if err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return Name{}, retErr
	}
	return n, nil
}

// formatValidationErrors renders validator errors as "field: tag" pairs.
func formatValidationErrors(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
