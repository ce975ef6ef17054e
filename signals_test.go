package moniker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitContractViolated(_ *testing.T) {
	// Should not panic
	emitContractViolated(context.Background(), "insert", ErrIllegalArgument.Error(), "index out of range")
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "application/json", MustArrayName([]string{"a"}), 42, 100*time.Millisecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "application/json", Name{}, 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "application/yaml", 64, 100*time.Millisecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "application/yaml", 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitBinderCreated(_ *testing.T) {
	emitBinderCreated(context.Background(), "Route", 2)
}

func TestEmitServiceFailed(_ *testing.T) {
	EmitServiceFailed(context.Background(), "findNodes", NewServiceError("findNodes", "failed", nil))
}
