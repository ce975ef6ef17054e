package moniker

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for name events.
var (
	SignalContractViolated = capitan.NewSignal("moniker.contract.violated", "Name contract check failed")
	SignalEncodeComplete   = capitan.NewSignal("moniker.encode.complete", "Name record encoded")
	SignalDecodeComplete   = capitan.NewSignal("moniker.decode.complete", "Name record decoded")
	SignalBinderCreated    = capitan.NewSignal("moniker.binder.created", "Binder instantiated")
	SignalServiceFailed    = capitan.NewSignal("moniker.service.failed", "Multi-step operation failed")
)

// Keys for typed event data.
var (
	KeyOperation   = capitan.NewStringKey("operation")
	KeyViolation   = capitan.NewStringKey("violation")
	KeyCondition   = capitan.NewStringKey("condition")
	KeyKind        = capitan.NewStringKey("kind")
	KeyDelimiter   = capitan.NewStringKey("delimiter")
	KeyComponents  = capitan.NewIntKey("components")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitContractViolated emits an event when a contract check fails.
func emitContractViolated(ctx context.Context, operation, violation, condition string) {
	capitan.Error(ctx, SignalContractViolated,
		KeyOperation.Field(operation),
		KeyViolation.Field(violation),
		KeyCondition.Field(condition),
	)
}

// emitEncodeComplete emits an event when a record has been encoded.
func emitEncodeComplete(ctx context.Context, contentType string, n Name, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyKind.Field(string(n.Kind())),
		KeyDelimiter.Field(string(n.Delimiter())),
		KeyComponents.Field(n.NoComponents()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeComplete emits an event when a record has been decoded.
func emitDecodeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitBinderCreated emits an event when a binder is created.
func emitBinderCreated(ctx context.Context, typeName string, fieldCount int) {
	capitan.Emit(ctx, SignalBinderCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
	)
}

// EmitServiceFailed emits an event when a multi-step operation fails.
// Collaborators wrapping failures in a ServiceError call it once per failure.
func EmitServiceFailed(ctx context.Context, operation string, err error) {
	capitan.Error(ctx, SignalServiceFailed,
		KeyOperation.Field(operation),
		KeyError.Field(err),
	)
}
