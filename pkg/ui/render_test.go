package ui

import (
	"strings"
	"testing"

	"gopivot/pkg/table"
	"gopivot/pkg/types"
)

func TestRenderTable(t *testing.T) {
	a, err := table.NewColumn("a", types.Text, []types.Field{
		types.NewTextField("one"), types.NewTextField("two"),
	})
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	x, err := table.NewColumn("x", types.Int64, []types.Field{
		types.NewInt64Field(1), nil,
	})
	if err != nil {
		t.Fatalf("NewColumn failed: %v", err)
	}
	tbl, err := table.New(a, x)
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}

	out, err := RenderTable(tbl)
	if err != nil {
		t.Fatalf("RenderTable failed: %v", err)
	}

	for _, fragment := range []string{"a", "x", "one", "two", "1", "null"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("rendered table does not contain %q:\n%s", fragment, out)
		}
	}
}
