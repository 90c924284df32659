package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_TaggedErrors(t *testing.T) {
	if kind := KindOf(NewIOError(errors.New("disk gone"))); kind != KindIO {
		t.Errorf("expected KindIO, got %s", kind)
	}
	if kind := KindOf(NewValidationError(errors.New("bad policy"))); kind != KindValidation {
		t.Errorf("expected KindValidation, got %s", kind)
	}
	if kind := KindOf(NewOtherError(errors.New("boom"))); kind != KindOther {
		t.Errorf("expected KindOther, got %s", kind)
	}
}

func TestKindOf_UntaggedError(t *testing.T) {
	if kind := KindOf(errors.New("plain")); kind != KindOther {
		t.Errorf("expected KindOther for untagged error, got %s", kind)
	}
}

func TestKindOf_WrappedPipelineError(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewIOError(errors.New("inner")))

	if kind := KindOf(err); kind != KindIO {
		t.Errorf("expected KindIO through wrapping, got %s", kind)
	}
}

func TestPipelineError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewValidationError(fmt.Errorf("context: %w", inner))

	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to reach the inner error")
	}
}

func TestMissingPolicyError_Message(t *testing.T) {
	err := &MissingPolicyError{Name: PolicyDataProtection}

	if err.Error() != "Missing required policy: data_protection" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
