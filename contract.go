package moniker

import (
	"context"
	"fmt"
	"slices"
)

// Contract checks guarding every mutation.
//
// Preconditions (require*) run before any effect and fail with
// ErrIllegalArgument. Postconditions (ensure*) compare the successor against
// the snapshot taken before the effect and fail with ErrMethodFailed; the
// receiver is never touched, so nothing has to be rolled back. The invariant
// check runs on every successor and fails with ErrInvalidState.

// violate builds a ContractError and reports it.
func violate(sentinel error, operation, condition string) error {
	emitContractViolated(context.Background(), operation, sentinel.Error(), condition)
	return newContractError(sentinel, operation, condition)
}

func requireIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return violate(ErrIllegalArgument, op, fmt.Sprintf("index %d is not in [0, %d)", i, n))
	}
	return nil
}

func requireInsertIndex(op string, i, n int) error {
	if i < 0 || i > n {
		return violate(ErrIllegalArgument, op, fmt.Sprintf("index %d is not valid for insertion into [0, %d]", i, n))
	}
	return nil
}

func ensureSet(op string, before []string, next representation, i int, c string) error {
	after := next.snapshot()
	if len(after) != len(before) {
		return violate(ErrMethodFailed, op, "component count changed")
	}
	if after[i] != c {
		return violate(ErrMethodFailed, op, fmt.Sprintf("component %d was not assigned", i))
	}
	for j := range before {
		if j != i && after[j] != before[j] {
			return violate(ErrMethodFailed, op, fmt.Sprintf("component %d was modified", j))
		}
	}
	return nil
}

func ensureInsert(op string, before []string, next representation, i int, c string) error {
	after := next.snapshot()
	if len(after) != len(before)+1 {
		return violate(ErrMethodFailed, op, "component count did not increase by one")
	}
	if after[i] != c {
		return violate(ErrMethodFailed, op, fmt.Sprintf("inserted component not found at index %d", i))
	}
	if !slices.Equal(after[:i], before[:i]) || !slices.Equal(after[i+1:], before[i:]) {
		return violate(ErrMethodFailed, op, "surrounding components were modified")
	}
	return nil
}

func ensureAppend(op string, before []string, next representation, c string) error {
	after := next.snapshot()
	if len(after) != len(before)+1 {
		return violate(ErrMethodFailed, op, "component count did not increase by one")
	}
	if after[len(before)] != c {
		return violate(ErrMethodFailed, op, "component was not appended at the end")
	}
	if !slices.Equal(after[:len(before)], before) {
		return violate(ErrMethodFailed, op, "existing components were modified")
	}
	return nil
}

func ensureRemove(op string, before []string, next representation, i int) error {
	after := next.snapshot()
	if len(after) != len(before)-1 {
		return violate(ErrMethodFailed, op, "component count did not decrease by one")
	}
	if !slices.Equal(after[:i], before[:i]) {
		return violate(ErrMethodFailed, op, "components before the removed index were modified")
	}
	if !slices.Equal(after[i:], before[i+1:]) {
		return violate(ErrMethodFailed, op, "components after the removed index were not shifted")
	}
	return nil
}

func ensureConcat(op string, before, suffix []string, next representation) error {
	after := next.snapshot()
	if len(after) != len(before)+len(suffix) {
		return violate(ErrMethodFailed, op,
			fmt.Sprintf("component count %d, want %d", len(after), len(before)+len(suffix)))
	}
	if !slices.Equal(after[:len(before)], before) {
		return violate(ErrMethodFailed, op, "original components were modified")
	}
	if !slices.Equal(after[len(before):], suffix) {
		return violate(ErrMethodFailed, op, "other components were not copied in order")
	}
	return nil
}

// checkInvariant validates the class invariants of a representation:
// a usable delimiter, a count consistent with the stored components, and
// components that mask unambiguously.
func checkInvariant(op string, rep representation) error {
	d := rep.delimiter()
	if !IsValidDelimiter(d) {
		return violate(ErrInvalidState, op, fmt.Sprintf("delimiter %q is not a single usable character", d))
	}
	components := rep.snapshot()
	if rep.count() != len(components) {
		return violate(ErrInvalidState, op,
			fmt.Sprintf("component count %d does not match %d stored components", rep.count(), len(components)))
	}
	for i, c := range components {
		if Unescape(Escape(c, d), d) != c {
			return violate(ErrInvalidState, op, fmt.Sprintf("component %d does not survive masking", i))
		}
	}
	if v, ok := rep.(verifier); ok {
		if cond := v.verify(); cond != "" {
			return violate(ErrInvalidState, op, cond)
		}
	}
	return nil
}
