package synth

import (
	"strings"

	"github.com/sdeodharms/bicep/internal/jsonval"
	"github.com/sdeodharms/bicep/internal/resource"
	"github.com/sdeodharms/bicep/internal/syntax"
	"github.com/sdeodharms/bicep/internal/types"
)

// Synthesize wraps the lowered resource state into a declaration. The
// declaration always represents a newly authored resource; no
// "existing" modifier is ever attached.
func Synthesize(id resource.ID, desc types.Descriptor, body jsonval.Value) (*syntax.Declaration, error) {
	expr, err := Lower(body)
	if err != nil {
		return nil, err
	}
	return &syntax.Declaration{
		Name: SanitizeIdentifier(id.Name()),
		Type: desc.String(),
		Body: expr,
	}, nil
}

// SanitizeIdentifier strips every character outside the ASCII letter
// ranges. The result may be empty; an empty identifier prints as a
// declaration without a name, which downstream validation surfaces.
func SanitizeIdentifier(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
