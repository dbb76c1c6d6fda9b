package parse

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toon-format/go-toon/ir"
)

func mustParse(t *testing.T, in string) (*ir.Node, []Diagnostic) {
	t.Helper()
	root, diags, err := ParseString(in)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", in, err)
	}
	if root == nil || root.Type != ir.ObjectType {
		t.Fatalf("ParseString(%q): root is not an object", in)
	}
	return root, diags
}

type scalarCase struct {
	in string
	t  ir.Type
	// expected payloads, checked per type
	s string
	i int64
	f float64
	b bool
}

func TestParseScalars(t *testing.T) {
	scs := []scalarCase{
		{in: "123", t: ir.IntType, i: 123},
		{in: "-7", t: ir.IntType, i: -7},
		{in: "+42", t: ir.IntType, i: 42},
		{in: "-3.14", t: ir.FloatType, f: -3.14},
		{in: "1.5e10", t: ir.FloatType, f: 1.5e10},
		{in: "2E-4", t: ir.FloatType, f: 2e-4},
		{in: "true", t: ir.BoolType, b: true},
		{in: "false", t: ir.BoolType, b: false},
		{in: "null", t: ir.NullType},
		{in: `"x"`, t: ir.StringType, s: "x"},
		{in: "hello", t: ir.StringType, s: "hello"},
		{in: "hello world", t: ir.StringType, s: "hello world"},
		{in: `"123"`, t: ir.StringType, s: "123"},
		{in: "12ab", t: ir.StringType, s: "12ab"},
		// quoted contents are verbatim, no escape decoding
		{in: `"a\nb"`, t: ir.StringType, s: `a\nb`},
		// int64 overflow promotes to float
		{in: "9223372036854775808", t: ir.FloatType, f: 9223372036854775808},
	}
	for _, sc := range scs {
		root, diags := mustParse(t, "key: "+sc.in+"\n")
		if len(diags) != 0 {
			t.Errorf("key: %s: unexpected diagnostics %v", sc.in, diags)
		}
		y := root.Get("key")
		if y == nil {
			t.Errorf("key: %s: not found", sc.in)
			continue
		}
		if y.Type != sc.t {
			t.Errorf("key: %s: type %s, want %s", sc.in, y.Type, sc.t)
			continue
		}
		switch sc.t {
		case ir.StringType:
			if y.String != sc.s {
				t.Errorf("key: %s: string %q, want %q", sc.in, y.String, sc.s)
			}
		case ir.IntType:
			if y.Int64 != sc.i {
				t.Errorf("key: %s: int %d, want %d", sc.in, y.Int64, sc.i)
			}
		case ir.FloatType:
			if y.Float64 != sc.f {
				t.Errorf("key: %s: float %v, want %v", sc.in, y.Float64, sc.f)
			}
		case ir.BoolType:
			if y.Bool != sc.b {
				t.Errorf("key: %s: bool %v, want %v", sc.in, y.Bool, sc.b)
			}
		}
	}
}

func TestParseFloatRange(t *testing.T) {
	// overflow clamps to the largest finite value with a warning
	root, diags := mustParse(t, "x: 1e999\ny: -1e999\n")
	if y := root.Get("x"); y == nil || y.Type != ir.FloatType || y.Float64 != math.MaxFloat64 {
		t.Errorf("x: got %+v", y)
	}
	if y := root.Get("y"); y == nil || y.Float64 != -math.MaxFloat64 {
		t.Errorf("y: got %+v", y)
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics: %v, want 2 warnings", diags)
	}
	for i, d := range diags {
		if d.Severity != SeverityWarn || d.Line != i+1 {
			t.Errorf("diagnostic %d: %+v", i, d)
		}
	}

	// the same clamp applies to list cells and table cells
	root, diags = mustParse(t, "nums[2]: 1e999,2\n")
	if y := root.Get("nums").At(0); y == nil || y.Float64 != math.MaxFloat64 {
		t.Errorf("list cell: got %+v", y)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarn {
		t.Errorf("list diagnostics: %v", diags)
	}
	root, diags = mustParse(t, "t[1]{a}:\n  1e999\n")
	if y := ir.Get(root.Get("t").At(0), "a"); y == nil || y.Float64 != math.MaxFloat64 {
		t.Errorf("table cell: got %+v", y)
	}
	if len(diags) != 1 || diags[0].Line != 2 {
		t.Errorf("table diagnostics: %v, want warning on line 2", diags)
	}

	// underflow stays finite and silent
	root, diags = mustParse(t, "tiny: 1e-999\n")
	if y := root.Get("tiny"); y == nil || y.Type != ir.FloatType || math.IsInf(y.Float64, 0) {
		t.Errorf("tiny: got %+v", y)
	}
	if len(diags) != 0 {
		t.Errorf("underflow diagnostics: %v", diags)
	}
}

func TestParseEmptyAndComments(t *testing.T) {
	for _, in := range []string{
		"",
		"\n\n\n",
		"# comment\n",
		"  # indented comment\n\n# another\n",
		"\r\n# crlf\r\n",
	} {
		root, diags := mustParse(t, in)
		if len(root.Values) != 0 {
			t.Errorf("ParseString(%q): %d children, want 0", in, len(root.Values))
		}
		if len(diags) != 0 {
			t.Errorf("ParseString(%q): unexpected diagnostics %v", in, diags)
		}
	}
}

func TestParseNesting(t *testing.T) {
	in := `user:
  name: Alice
  address:
    city: Springfield
`
	root, diags := mustParse(t, in)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	if y := root.Get("user.name"); y == nil || y.Type != ir.StringType || y.String != "Alice" {
		t.Errorf("user.name: got %+v", y)
	}
	if y := root.Get("user.address.city"); y == nil || y.String != "Springfield" {
		t.Errorf("user.address.city: got %+v", y)
	}
	if y := root.Get("user.missing"); y != nil {
		t.Errorf("user.missing: got %+v, want nil", y)
	}
	if y := root.Get("user.address"); y == nil || y.Type != ir.ObjectType {
		t.Errorf("user.address: got %+v", y)
	}
}

func TestParseList(t *testing.T) {
	root, diags := mustParse(t, "nums[3]: 1,2,3\n")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	nums := root.Get("nums")
	n, ok := nums.Len()
	if !ok || n != 3 {
		t.Fatalf("Len() = %d, %v", n, ok)
	}
	for i := range 3 {
		y := nums.At(i)
		if y == nil || y.Type != ir.IntType || y.Int64 != int64(i+1) {
			t.Errorf("At(%d): got %+v", i, y)
		}
	}
	if y := nums.At(3); y != nil {
		t.Errorf("At(3): got %+v, want nil", y)
	}
	if y := nums.At(-1); y != nil {
		t.Errorf("At(-1): got %+v, want nil", y)
	}
}

func TestParseListMixed(t *testing.T) {
	root, diags := mustParse(t, `vals[4]: a,2.5,null,true`+"\n")
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	vals := root.Get("vals")
	n, _ := vals.Len()
	if n != 4 {
		t.Fatalf("Len() = %d, want 4", n)
	}
	wantTypes := []ir.Type{ir.StringType, ir.FloatType, ir.NullType, ir.BoolType}
	for i, wt := range wantTypes {
		if y := vals.At(i); y == nil || y.Type != wt {
			t.Errorf("At(%d): got %+v, want %s", i, y, wt)
		}
	}

	// field splitting is not quote aware: a comma inside quotes cuts
	// the cell
	root, _ = mustParse(t, `q[1]: "a,b"`+"\n")
	q := root.Get("q")
	if n, _ := q.Len(); n != 2 {
		t.Errorf(`"a,b": Len() = %d, want 2 split cells`, n)
	}
}

func TestParseListEmptyCells(t *testing.T) {
	root, _ := mustParse(t, "a[3]: 1,,2\n")
	a := root.Get("a")
	n, _ := a.Len()
	if n != 3 {
		t.Fatalf("Len() = %d, want 3", n)
	}
	if y := a.At(1); y == nil || y.Type != ir.NullType {
		t.Errorf("empty cell: got %+v, want null", y)
	}

	// a trailing separator contributes nothing
	root, diags := mustParse(t, "b[1]: 1,\n")
	b := root.Get("b")
	if n, _ := b.Len(); n != 1 {
		t.Errorf("trailing comma: Len() = %d, want 1", n)
	}
	if len(diags) != 0 {
		t.Errorf("trailing comma: diagnostics %v", diags)
	}

	// an empty value span is an empty list
	root, _ = mustParse(t, "c[0]:\n")
	c := root.Get("c")
	if n, _ := c.Len(); n != 0 {
		t.Errorf("empty list: Len() = %d, want 0", n)
	}
}

func TestParseListCountMismatch(t *testing.T) {
	root, diags := mustParse(t, "nums[5]: 1,2\n")
	nums := root.Get("nums")
	if n, _ := nums.Len(); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarn {
		t.Errorf("diagnostics: %v, want one warning", diags)
	}
	if diags[0].Line != 1 {
		t.Errorf("diagnostic line %d, want 1", diags[0].Line)
	}
}

func TestParseListHugeCount(t *testing.T) {
	// a declared count too large for int saturates instead of wrapping
	// negative, so the value still parses as a list
	root, diags := mustParse(t, "a[99999999999999999999]: 1,2\n")
	a := root.Get("a")
	n, ok := a.Len()
	if !ok || n != 2 {
		t.Fatalf("Len() = %d, %v, want a 2-element list", n, ok)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarn {
		t.Errorf("diagnostics: %v, want one count-mismatch warning", diags)
	}
}

func TestParseTable(t *testing.T) {
	in := `users[2]{id,name}:
  1,Alice
  2,Bob
`
	root, diags := mustParse(t, in)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	users := root.Get("users")
	n, ok := users.Len()
	if !ok || n != 2 {
		t.Fatalf("Len() = %d, %v", n, ok)
	}
	row := users.At(1)
	if row == nil || row.Type != ir.ObjectType {
		t.Fatalf("At(1): got %+v", row)
	}
	if y := ir.Get(row, "name"); y == nil || y.String != "Bob" {
		t.Errorf("row name: got %+v", y)
	}
	if y := ir.Get(row, "id"); y == nil || y.Type != ir.IntType || y.Int64 != 2 {
		t.Errorf("row id: got %+v", y)
	}
}

func TestParseTableShort(t *testing.T) {
	// fewer rows than declared: tolerated silently
	in := `users[3]{id,name}:
  1,Alice

after: 1
`
	root, diags := mustParse(t, in)
	users := root.Get("users")
	if n, _ := users.Len(); n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
	for _, d := range diags {
		t.Errorf("unexpected diagnostic: %v", d)
	}
	if y := root.Get("after"); y == nil || y.Int64 != 1 {
		t.Errorf("after: got %+v", y)
	}
}

func TestParseTableMissingCells(t *testing.T) {
	in := `users[2]{id,name,role}:
  1,Alice
  2
`
	root, _ := mustParse(t, in)
	users := root.Get("users")
	row := users.At(0)
	if y := ir.Get(row, "role"); y == nil || y.Type != ir.NullType {
		t.Errorf("missing trailing cell: got %+v, want null", y)
	}
	row = users.At(1)
	if y := ir.Get(row, "name"); y == nil || y.Type != ir.NullType {
		t.Errorf("missing cell name: got %+v, want null", y)
	}
	// explicit empty cells are null too
	root, _ = mustParse(t, "t[1]{a,b}:\n  ,x\n")
	row = root.Get("t").At(0)
	if y := ir.Get(row, "a"); y == nil || y.Type != ir.NullType {
		t.Errorf("empty cell: got %+v, want null", y)
	}
}

func TestParseTableNoCount(t *testing.T) {
	// {cols} without [N]: rows run until blank line or EOF
	in := `users{id,name}:
  1,Alice
  2,Bob
  3,Carol
`
	root, _ := mustParse(t, in)
	users := root.Get("users")
	if n, _ := users.Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
}

func TestParseMalformedRecovery(t *testing.T) {
	in := `good: 1
this line has no colon
also_good: 2
: novalue
last: 3
`
	root, diags := mustParse(t, in)
	for _, k := range []string{"good", "also_good", "last"} {
		if y := root.Get(k); y == nil || y.Type != ir.IntType {
			t.Errorf("%s: got %+v", k, y)
		}
	}
	if y := root.Get("this line has no colon"); y != nil {
		t.Errorf("malformed key resolved: %+v", y)
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics: %v, want 2", diags)
	}
	if diags[0].Line != 2 || diags[0].Severity != SeverityError {
		t.Errorf("first diagnostic: %+v", diags[0])
	}
	if diags[1].Line != 4 {
		t.Errorf("second diagnostic: %+v", diags[1])
	}
}

func TestParseEmptyValueOpensObject(t *testing.T) {
	// a property with no scalar value becomes an object even when
	// nothing deeper follows
	root, _ := mustParse(t, "obj:\n")
	if y := root.Get("obj"); y == nil || y.Type != ir.ObjectType || len(y.Values) != 0 {
		t.Errorf("obj: got %+v", y)
	}
}

func TestParseIndentJump(t *testing.T) {
	in := `a: 1
    b: 2
`
	root, diags := mustParse(t, in)
	// the jumped line attaches to the deepest open parent (the root)
	if y := root.Get("b"); y == nil || y.Int64 != 2 {
		t.Errorf("b: got %+v", y)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityWarn {
		t.Errorf("diagnostics: %v, want one warning", diags)
	}
}

func TestParseOddIndent(t *testing.T) {
	// odd space counts truncate toward the lower level
	in := "a:\n name: x\n"
	root, _ := mustParse(t, in)
	// 1 space = level 0, so name lands on the root, not inside a
	if y := root.Get("name"); y == nil || y.String != "x" {
		t.Errorf("name: got %+v", y)
	}
	if a := root.Get("a"); a == nil || len(a.Values) != 0 {
		t.Errorf("a: got %+v", a)
	}
}

func TestParseSiblingsAfterNested(t *testing.T) {
	in := `a:
  deep:
    x: 1
b: 2
`
	root, diags := mustParse(t, in)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	if y := root.Get("a.deep.x"); y == nil || y.Int64 != 1 {
		t.Errorf("a.deep.x: got %+v", y)
	}
	if y := root.Get("b"); y == nil || y.Int64 != 2 {
		t.Errorf("b: got %+v", y)
	}
	if len(root.Values) != 2 {
		t.Errorf("root has %d children, want 2", len(root.Values))
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	in := "k: 1\nk: 2\n"
	root, _ := mustParse(t, in)
	if len(root.Values) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Values))
	}
	// first match wins
	if y := root.Get("k"); y == nil || y.Int64 != 1 {
		t.Errorf("k: got %+v", y)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := `a:
  b:
    c: 1
`
	_, diags, err := ParseString(in, MaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityError || diags[0].Line != 3 {
		t.Errorf("diagnostics: %v, want depth error on line 3", diags)
	}
}

func TestParseMaxDepthTable(t *testing.T) {
	// a rejected tabular header still consumes its rows, so they do not
	// cascade into per-row diagnostics
	in := `a:
  b:
    t[2]{id,name}:
      1,Alice
      2,Bob
after: 1
`
	root, diags, err := ParseString(in, MaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 1 || diags[0].Severity != SeverityError || diags[0].Line != 3 {
		t.Fatalf("diagnostics: %v, want only the depth error on line 3", diags)
	}
	if y := root.Get("after"); y == nil || y.Int64 != 1 {
		t.Errorf("after: got %+v", y)
	}
	if y := root.Get("a.b.t"); y != nil {
		t.Errorf("a.b.t: got %+v, want nil", y)
	}
}

func TestParseWithFile(t *testing.T) {
	_, diags, _ := ParseString("nope\n", WithFile("x.toon"))
	if len(diags) != 1 {
		t.Fatalf("diagnostics: %v", diags)
	}
	want := "x.toon:1:5: error: expected ':'"
	if got := diags[0].String(); got != want {
		t.Errorf("diagnostic %q, want %q", got, want)
	}
}

func TestParseTree(t *testing.T) {
	in := `# sample
name: "Bob"
age: 21
height: 180.5
married: false
job: null
nicknames[2]: bobby,bub
`
	root, diags := mustParse(t, in)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: %v", diags)
	}
	want := map[string]any{
		"name":      "Bob",
		"age":       int64(21),
		"height":    180.5,
		"married":   false,
		"job":       nil,
		"nicknames": []any{"bobby", "bub"},
	}
	if d := cmp.Diff(want, ir.ToAny(root)); d != "" {
		t.Error(d)
	}
}
