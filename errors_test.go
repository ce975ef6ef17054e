package moniker

import (
	"errors"
	"fmt"
	"testing"
)

func TestContractError_Is(t *testing.T) {
	err := newContractError(ErrIllegalArgument, "insert", "index 5 out of range")

	if !errors.Is(err, ErrIllegalArgument) {
		t.Error("ContractError should unwrap to ErrIllegalArgument")
	}

	if errors.Is(err, ErrInvalidState) {
		t.Error("ContractError should not match ErrInvalidState")
	}
}

func TestContractError_As(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewInvalidState("rename", "empty base name"))

	var ce *ContractError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should find ContractError")
	}
	if ce.Operation != "rename" {
		t.Errorf("Operation = %q, want %q", ce.Operation, "rename")
	}
	if ce.Err != ErrInvalidState {
		t.Errorf("Err = %v, want ErrInvalidState", ce.Err)
	}
}

func TestContractError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with operation",
			err:  NewIllegalArgument("remove", "index 3 is not in [0, 2)"),
			want: "remove: illegal argument: index 3 is not in [0, 2)",
		},
		{
			name: "without operation",
			err:  &ContractError{Err: ErrMethodFailed, Condition: "count mismatch"},
			want: "method failed: count mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceError_Trigger(t *testing.T) {
	trigger := NewInvalidState("baseName", "empty")
	err := NewServiceError("findNodes", "subtree is inconsistent", trigger)

	if !errors.Is(err, ErrServiceFailure) {
		t.Error("ServiceError should match ErrServiceFailure")
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("ServiceError should match its trigger")
	}

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find ServiceError")
	}
	if !se.HasTrigger() {
		t.Error("HasTrigger() = false, want true")
	}
	if se.Trigger() != trigger {
		t.Errorf("Trigger() = %v, want %v", se.Trigger(), trigger)
	}
}

func TestServiceError_NoTrigger(t *testing.T) {
	err := NewServiceError("findNodes", "gave up", nil)

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find ServiceError")
	}
	if se.HasTrigger() {
		t.Error("HasTrigger() = true, want false")
	}
	if got, want := err.Error(), "findNodes: gave up"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(err, ErrInvalidState) {
		t.Error("ServiceError without trigger should not match ErrInvalidState")
	}
}

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrMissingHasher, "blake2b", "Path")

	if !errors.Is(err, ErrMissingHasher) {
		t.Error("ConfigError should unwrap to ErrMissingHasher")
	}

	if errors.Is(err, ErrInvalidTag) {
		t.Error("ConfigError should not match ErrInvalidTag")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantPart string
	}{
		{
			name:     "full context",
			err:      newConfigError(ErrInvalidTag, "::", "Path"),
			wantPart: `invalid tag "::" (field Path)`,
		},
		{
			name:     "value only",
			err:      &ConfigError{Err: ErrMissingHasher, Value: "sha256"},
			wantPart: `missing hasher "sha256"`,
		},
		{
			name:     "field only",
			err:      &ConfigError{Err: ErrInvalidTag, Field: "Scope"},
			wantPart: `invalid tag (field Scope)`,
		},
		{
			name:     "bare",
			err:      &ConfigError{Err: ErrInvalidTag},
			wantPart: `invalid tag`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.wantPart {
				t.Errorf("Error() = %q, want %q", got, tt.wantPart)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := newCodecError(ErrUnmarshal, cause)

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should match ErrUnmarshal")
	}
	if !errors.Is(err, cause) {
		t.Error("CodecError should match its cause")
	}
	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
	if got, want := err.Error(), "unmarshal failed: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
