package sequence

import (
	"fmt"
	"slices"

	polycipher "github.com/BackendStack21/polycipher-go"
)

// Transform is one of the fixed, named sequence rearrangements.
type Transform int

const (
	TransformIdentity Transform = iota
	TransformReverse
)

func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Transform(%d)", int(t))
	}
}

// ParseTransform resolves a transform by name.
func ParseTransform(name string) (Transform, error) {
	switch name {
	case "identity", "":
		return TransformIdentity, nil
	case "reverse", "mirror":
		return TransformReverse, nil
	default:
		return 0, fmt.Errorf("unknown transform %q", name)
	}
}

// TransformForMode maps a table mode to its row transform.
func TransformForMode(m polycipher.Mode) Transform {
	if m == polycipher.ModeMirror {
		return TransformReverse
	}
	return TransformIdentity
}

// Apply returns a transformed copy of items. Unknown transforms act as identity.
func Apply[T any](t Transform, items []T) []T {
	out := slices.Clone(items)
	if t == TransformReverse {
		slices.Reverse(out)
	}
	return out
}
