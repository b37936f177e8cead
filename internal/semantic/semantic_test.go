package semantic_test

import (
	"errors"
	"testing"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/semantic"
	"github.com/sdeodharms/bicep/internal/syntax"
	"github.com/sdeodharms/bicep/internal/types"
)

const widgetSchema = `{
  "properties": {
    "id": {"flags": ["readOnly"]},
    "name": {},
    "osProfile": {
      "properties": {
        "computerName": {},
        "adminState": {"flags": ["readOnly"]}
      }
    },
    "dataDisks": {
      "items": {
        "properties": {
          "lun": {},
          "managedBy": {"flags": ["readOnly"]}
        }
      }
    }
  }
}`

type fixedResolver struct {
	sch *schema.ObjectType
	err error
}

func (r fixedResolver) ResolveSchema(types.Descriptor) (*schema.ObjectType, error) {
	return r.sch, r.err
}

func widgetResolver(t *testing.T) semantic.SchemaResolver {
	t.Helper()
	sch, err := schema.ParseObjectType([]byte(widgetSchema))
	if err != nil {
		t.Fatalf("ParseObjectType failed: %v", err)
	}
	return fixedResolver{sch: sch}
}

func mustParse(t *testing.T, src string) *syntax.Declaration {
	t.Helper()
	decl, err := syntax.Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return decl
}

func TestRecase(t *testing.T) {
	decl := mustParse(t, `resource w 'Microsoft.Example/widgets@2020-01-01' = {
  NAME: 'w1'
  osprofile: {
    COMPUTERNAME: 'w1'
  }
  datadisks: [
    {
      LUN: 0
    }
  ]
  unknownKey: 1
}`)

	view, err := semantic.NewView(semantic.Context{Schemas: widgetResolver(t)}, decl)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	got := syntax.Print(semantic.Recase(view), syntax.DefaultOptions())
	want := `resource w 'Microsoft.Example/widgets@2020-01-01' = {
  name: 'w1'
  osProfile: {
    computerName: 'w1'
  }
  dataDisks: [
    {
      lun: 0
    }
  ]
  unknownKey: 1
}
`
	if got != want {
		t.Errorf("unexpected recased output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRecaseDoesNotMutateInput(t *testing.T) {
	decl := mustParse(t, `resource w 'Microsoft.Example/widgets@2020-01-01' = {
  NAME: 'w1'
}`)
	before := syntax.Print(decl, syntax.DefaultOptions())

	view, err := semantic.NewView(semantic.Context{Schemas: widgetResolver(t)}, decl)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	semantic.Recase(view)

	if after := syntax.Print(decl, syntax.DefaultOptions()); after != before {
		t.Errorf("input tree was mutated:\n%s", after)
	}
}

func TestPrune(t *testing.T) {
	decl := mustParse(t, `resource w 'Microsoft.Example/widgets@2020-01-01' = {
  id: '/subscriptions/0000/...'
  name: 'w1'
  osProfile: {
    computerName: 'w1'
    adminState: 'up'
  }
  dataDisks: [
    {
      lun: 0
      managedBy: 'platform'
    }
  ]
  unknownKey: 1
}`)

	view, err := semantic.NewView(semantic.Context{Schemas: widgetResolver(t)}, decl)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	got := syntax.Print(semantic.Prune(view), syntax.DefaultOptions())
	want := `resource w 'Microsoft.Example/widgets@2020-01-01' = {
  name: 'w1'
  osProfile: {
    computerName: 'w1'
  }
  dataDisks: [
    {
      lun: 0
    }
  ]
  unknownKey: 1
}
`
	if got != want {
		t.Errorf("unexpected pruned output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPassesWithUnknownTypeAreNoOps(t *testing.T) {
	src := `resource w 'Microsoft.Unknown/things@2020-01-01' = {
  SomeKey: 'v'
}`
	decl := mustParse(t, src)

	view, err := semantic.NewView(semantic.Context{Schemas: fixedResolver{}}, decl)
	if err != nil {
		t.Fatalf("NewView failed: %v", err)
	}
	recased := syntax.Print(semantic.Recase(view), syntax.DefaultOptions())
	pruned := syntax.Print(semantic.Prune(view), syntax.DefaultOptions())
	want := src + "\n"
	if recased != want || pruned != want {
		t.Errorf("expected passes to leave unknown types untouched:\n%s\n%s", recased, pruned)
	}
}

func TestNewViewRejectsMalformedTrees(t *testing.T) {
	cases := []*syntax.Declaration{
		nil,
		{Name: "w", Type: "Microsoft.Example/widgets@2020-01-01"}, // no body
		{Name: "w", Type: "noversion", Body: &syntax.ObjectExpr{}},
	}
	for _, decl := range cases {
		_, err := semantic.NewView(semantic.Context{Schemas: fixedResolver{}}, decl)
		if !errors.Is(err, semantic.ErrMalformedTree) {
			t.Errorf("expected ErrMalformedTree for %#v, got %v", decl, err)
		}
	}
}

func TestNewViewPropagatesResolverFailure(t *testing.T) {
	decl := mustParse(t, `resource w 'Microsoft.Example/widgets@2020-01-01' = {}`)
	resolverErr := errors.New("catalog unavailable")

	_, err := semantic.NewView(semantic.Context{Schemas: fixedResolver{err: resolverErr}}, decl)
	if !errors.Is(err, resolverErr) {
		t.Fatalf("expected resolver error, got %v", err)
	}
}
