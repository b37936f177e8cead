package semantic

import (
	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/syntax"
)

// Prune removes properties the schema marks read-only, recursing
// through nested object and array schemas. Server-computed fields are
// not legal to author, so they must not survive into the inserted
// declaration. The input tree is not mutated.
func Prune(v *View) *syntax.Declaration {
	return &syntax.Declaration{
		Name: v.Decl.Name,
		Type: v.Decl.Type,
		Body: pruneExpr(v.Decl.Body, v.Schema),
	}
}

func pruneExpr(expr syntax.Expression, t *schema.ObjectType) syntax.Expression {
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
		if sp.Flags.Has(schema.ReadOnly) {
			continue
		}
		properties = append(properties, syntax.Property{
			Key:   prop.Key,
			Value: pruneValue(prop.Value, sp),
		})
	}
	return &syntax.ObjectExpr{Properties: properties}
}

func pruneValue(expr syntax.Expression, sp schema.Property) syntax.Expression {
	switch e := expr.(type) {
	case *syntax.ObjectExpr:
		return pruneExpr(e, sp.Object)
	case *syntax.ArrayExpr:
		if sp.Array == nil {
			return e
		}
		items := make([]syntax.Expression, 0, len(e.Items))
		for _, item := range e.Items {
			items = append(items, pruneExpr(item, sp.Array))
		}
		return &syntax.ArrayExpr{Items: items}
	}
	return expr
}
