package errorsx

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapAndReason(t *testing.T) {
	err := Wrap(assertErr{}, ReasonRecognize)
	if Reason(err) != ReasonRecognize {
		t.Fatalf("expected reason %s, got %s", ReasonRecognize, Reason(err))
	}
	if !HasReason(err, ReasonRecognize) {
		t.Fatalf("expected HasReason true")
	}
}

func TestWrapPreservesExistingReason(t *testing.T) {
	first := Wrap(assertErr{}, ReasonNotFound)
	second := Wrap(first, ReasonRecognize)
	if Reason(second) != ReasonNotFound {
		t.Fatalf("expected reason preserved, got %s", Reason(second))
	}
}

func TestNewAndErrorf(t *testing.T) {
	err := New(ReasonNotFound, "session not found")
	if err.Error() != "session not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if Reason(err) != ReasonNotFound {
		t.Fatalf("expected not_found, got %s", Reason(err))
	}

	err = Errorf(ReasonInvalidInput, "unsupported export format: %s", "csv")
	if err.Error() != "unsupported export format: csv" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if Reason(err) != ReasonInvalidInput {
		t.Fatalf("expected invalid_input, got %s", Reason(err))
	}
}

func TestReasonSurvivesWrapping(t *testing.T) {
	inner := New(ReasonNotFound, "alert not found")
	outer := fmt.Errorf("delete alert: %w", inner)
	if Reason(outer) != ReasonNotFound {
		t.Fatalf("expected reason through %%w chain, got %s", Reason(outer))
	}
	if Reason(errors.New("plain")) != ReasonUnknown {
		t.Fatalf("expected unknown for plain error")
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
