package scanner

import (
	"reflect"
	"testing"
)

func TestContextNesting(t *testing.T) {
	det := NewDetector(NewRegistry(DefaultOptions()))

	// A-start, B-start, B-end, A-end
	lines := []string{
		"# @start A",
		"# @start B",
		"# @end B",
		"# @end A",
	}
	wantStacks := [][]string{
		{"A"},
		{"A", "B"},
		{"A"},
		{},
	}

	ctx := Context{}
	for i, line := range lines {
		m := det.Detect(line, i+1)
		if m == nil {
			t.Fatalf("line %d: not a marker", i+1)
		}
		ctx = ctx.Apply(m)
		if got := ctx.Stack(); !reflect.DeepEqual(got, wantStacks[i]) {
			t.Errorf("after line %d: stack = %v, want %v", i+1, got, wantStacks[i])
		}
	}
	if ctx.Current() != "" {
		t.Errorf("final current = %q, want empty", ctx.Current())
	}
}

func TestContextPopEmptyStack(t *testing.T) {
	ctx := Context{}
	ctx = ctx.Apply(&Marker{Type: MarkerDashedEnd})
	if ctx.Current() != "" {
		t.Errorf("current = %q, want empty", ctx.Current())
	}
	if len(ctx.Stack()) != 0 {
		t.Errorf("stack = %v, want empty", ctx.Stack())
	}
}

func TestContextMismatchedEndUnwindsNearest(t *testing.T) {
	ctx := Context{}
	ctx = ctx.Apply(&Marker{Type: MarkerCustomStart, Name: "Outer"})
	ctx = ctx.Apply(&Marker{Type: MarkerCustomStart, Name: "Inner"})
	// End marker names are never verified against the open section.
	ctx = ctx.Apply(&Marker{Type: MarkerCustomEnd, Name: "Totally Different"})
	if ctx.Current() != "Outer" {
		t.Errorf("current = %q, want Outer", ctx.Current())
	}
}

func TestContextFunctionPromotion(t *testing.T) {
	tests := []struct {
		name        string
		funcName    string
		wantSection bool
	}{
		{"three letter name", "gco", true},
		{"snake case", "g_c", true},
		{"camel case", "gC", true},
		{"verb prefix", "up2", false},
		{"verb prefix setup", "setup", true},
		{"short cryptic", "x2", false},
		{"two letters", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{}
			ctx = ctx.Apply(&Marker{Type: MarkerFunctionStart, Name: tt.funcName})
			if ctx.FunctionLevel() != 1 {
				t.Errorf("functionLevel = %d, want 1", ctx.FunctionLevel())
			}
			got := ctx.Current()
			if tt.wantSection {
				want := "Function: " + tt.funcName
				if got != want {
					t.Errorf("current = %q, want %q", got, want)
				}
			} else if got != "" {
				t.Errorf("current = %q, want no section", got)
			}
		})
	}
}

func TestContextFunctionEndClosesSection(t *testing.T) {
	ctx := Context{}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionStart, Name: "setup_env"})
	if ctx.Current() != "Function: setup_env" {
		t.Fatalf("current = %q", ctx.Current())
	}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionEnd})
	if ctx.FunctionLevel() != 0 {
		t.Errorf("functionLevel = %d, want 0", ctx.FunctionLevel())
	}
	if ctx.Current() != "" {
		t.Errorf("current = %q, want empty", ctx.Current())
	}
}

func TestContextNestedFunctions(t *testing.T) {
	// Inner brace pairs must not close the outer function section early.
	ctx := Context{}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionStart, Name: "build_all"})
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionStart, Name: "helper_fn"})
	if ctx.FunctionLevel() != 2 {
		t.Fatalf("functionLevel = %d, want 2", ctx.FunctionLevel())
	}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionEnd})
	if ctx.Current() != "Function: helper_fn" {
		t.Errorf("current = %q, inner section should survive until level 0", ctx.Current())
	}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionEnd})
	if ctx.FunctionLevel() != 0 {
		t.Errorf("functionLevel = %d, want 0", ctx.FunctionLevel())
	}
	if ctx.Current() != "" && ctx.Current() != "Function: build_all" {
		t.Errorf("current = %q", ctx.Current())
	}
}

func TestContextFunctionEndBelowZero(t *testing.T) {
	ctx := Context{}
	ctx = ctx.Apply(&Marker{Type: MarkerFunctionEnd})
	if ctx.FunctionLevel() != 0 {
		t.Errorf("functionLevel = %d, want 0 (never negative)", ctx.FunctionLevel())
	}
}

func TestIsDescriptiveName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"setup_environment", true},
		{"myFunc", true},
		{"abc", true},
		{"installX", true},
		{"ab", false},
		{"x1", false},
		{"g2o", false},
	}
	for _, tt := range tests {
		if got := isDescriptiveName(tt.name); got != tt.want {
			t.Errorf("isDescriptiveName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
