package syntax_test

import (
	"reflect"
	"testing"

	"github.com/sdeodharms/bicep/internal/syntax"
)

// TestRoundTrip verifies that parsing printed output reproduces the
// original tree, for every option combination the printer supports.
func TestRoundTrip(t *testing.T) {
	decl := sampleDeclaration()

	options := []syntax.Options{
		syntax.DefaultOptions(),
		{Newline: syntax.CRLF, Indent: syntax.IndentTabs, InsertFinalNewline: true},
		{Newline: syntax.LF, Indent: syntax.IndentSpaces, IndentSize: 4},
	}
	for _, opts := range options {
		text := syntax.Print(decl, opts)
		parsed, err := syntax.Parse(text)
		if err != nil {
			t.Fatalf("Parse failed for options %+v: %v\n%s", opts, err, text)
		}
		if !reflect.DeepEqual(parsed, decl) {
			t.Errorf("round trip changed tree for options %+v:\n%s", opts, text)
		}
	}
}

func TestRoundTripAwkwardStrings(t *testing.T) {
	decl := &syntax.Declaration{
		Name: "r",
		Type: "Microsoft.Example/widgets@2020-01-01",
		Body: &syntax.ObjectExpr{Properties: []syntax.Property{
			{Key: "script", Value: &syntax.StringLit{Value: "line1\nline2\t'quoted' \\ ${x}"}},
			{Key: "odd key", Value: &syntax.StringLit{Value: ""}},
		}},
	}
	text := syntax.Print(decl, syntax.DefaultOptions())
	parsed, err := syntax.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, text)
	}
	if !reflect.DeepEqual(parsed, decl) {
		t.Errorf("round trip changed tree:\n%s", text)
	}
}

func TestRoundTripEmptyName(t *testing.T) {
	decl := &syntax.Declaration{
		Name: "",
		Type: "Microsoft.Example/widgets@2020-01-01",
		Body: &syntax.ObjectExpr{},
	}
	text := syntax.Print(decl, syntax.DefaultOptions())
	parsed, err := syntax.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, text)
	}
	if parsed.Name != "" {
		t.Errorf("expected empty name, got %q", parsed.Name)
	}
}

func TestParseNegativeInteger(t *testing.T) {
	decl, err := syntax.Parse("resource r 'T@1' = {\n  weight: -42\n}\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj := decl.Body.(*syntax.ObjectExpr)
	lit, ok := obj.Properties[0].Value.(*syntax.IntLit)
	if !ok || lit.Value != -42 {
		t.Errorf("expected -42, got %#v", obj.Properties[0].Value)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"resource",
		"resource r = {}",
		"resource r 'T@1' {}",
		"resource r 'T@1' = {",
		"resource r 'T@1' = { a 1 }",
		"resource r 'unterminated = {}",
		"resource r 'T@1' = { a: \\q }",
		"resource r 'T@1' = 99999999999",
		"module r 'T@1' = {}",
		"resource r 'T@1' = {} trailing",
	}
	for _, input := range inputs {
		if _, err := syntax.Parse(input); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}
