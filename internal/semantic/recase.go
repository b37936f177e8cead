package semantic

import (
	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/syntax"
)

// Recase rewrites property keys to the schema's canonical casing,
// matching keys case-insensitively and recursing through nested object
// and array schemas. Properties without a schema entry pass through
// unchanged. The input tree is not mutated.
func Recase(v *View) *syntax.Declaration {
	return &syntax.Declaration{
		Name: v.Decl.Name,
		Type: v.Decl.Type,
		Body: recaseExpr(v.Decl.Body, v.Schema),
	}
}

func recaseExpr(expr syntax.Expression, t *schema.ObjectType) syntax.Expression {
	if t == nil {
		return expr
	}
	obj, ok := expr.(*syntax.ObjectExpr)
	if !ok {
		return expr
	}

	properties := make([]syntax.Property, 0, len(obj.Properties))
	for _, prop := range obj.Properties {
		sp, ok := t.Lookup(prop.Key)
		if !ok {
			properties = append(properties, prop)
			continue
		}
		properties = append(properties, syntax.Property{
			Key:   sp.Name,
			Value: recaseValue(prop.Value, sp),
		})
	}
	return &syntax.ObjectExpr{Properties: properties}
}

func recaseValue(expr syntax.Expression, sp schema.Property) syntax.Expression {
	switch e := expr.(type) {
	case *syntax.ObjectExpr:
		return recaseExpr(e, sp.Object)
	case *syntax.ArrayExpr:
		if sp.Array == nil {
			return e
		}
		items := make([]syntax.Expression, 0, len(e.Items))
		for _, item := range e.Items {
			items = append(items, recaseExpr(item, sp.Array))
		}
		return &syntax.ArrayExpr{Items: items}
	}
	return expr
}
