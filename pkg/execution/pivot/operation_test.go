package pivot

import (
	"testing"

	"gopivot/pkg/primitives"
)

func TestResolveOperationClosedSet(t *testing.T) {
	tests := []struct {
		name string
		want Operation
	}{
		{"first", First},
		{"sum", Sum},
		{"min", Min},
		{"max", Max},
		{"mean", Mean},
		{"median", Median},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ResolveOperation(primitives.Untagged(tt.name))
			if err != nil {
				t.Fatalf("ResolveOperation(%q) failed: %v", tt.name, err)
			}
			if op != tt.want {
				t.Errorf("op = %v, want %v", op, tt.want)
			}
			if op.String() != tt.name {
				t.Errorf("String() = %q, want %q", op.String(), tt.name)
			}
		})
	}
}

func TestResolveOperationRejectsUnknown(t *testing.T) {
	span := primitives.Span{Start: 10, End: 13}
	names := []string{"", "avg", "count", "Sum", "SUM", "median "}

	for _, name := range names {
		t.Run("reject "+name, func(t *testing.T) {
			_, err := ResolveOperation(primitives.NewTagged(name, span))
			if err == nil {
				t.Fatalf("ResolveOperation(%q) unexpectedly succeeded", name)
			}

			pe, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if pe.Kind != ErrUnknownOperation {
				t.Errorf("Kind = %v, want ErrUnknownOperation", pe.Kind)
			}
			if pe.Name != name {
				t.Errorf("Name = %q, want %q", pe.Name, name)
			}
			if pe.Span != span {
				t.Errorf("Span = %v, want %v", pe.Span, span)
			}
			if len(pe.Valid) != 6 {
				t.Errorf("Valid has %d entries, want 6", len(pe.Valid))
			}
		})
	}
}
