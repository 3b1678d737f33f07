package scaffold

// Kind identifies one of the fixed template sets.
type Kind string

// Template kinds, from bare metadata to full multi-component structure.
const (
	KindSimple       Kind = "simple"
	KindIntermediate Kind = "intermediate"
	KindComplex      Kind = "complex"
)

// kindInfo describes one registry entry.
type kindInfo struct {
	Description string
	UseCases    []string
}

// registry is the immutable template-kind lookup table.
var registry = map[Kind]kindInfo{
	KindSimple: {
		Description: "Single-purpose skill with SKILL.md only",
		UseCases: []string{
			"Brand guidelines application",
			"Text templates",
			"Style guides",
			"Checklists",
		},
	},
	KindIntermediate: {
		Description: "Skill with scripts and configuration",
		UseCases: []string{
			"Data processing",
			"File conversion",
			"API integration",
			"Calculations",
		},
	},
	KindComplex: {
		Description: "Multi-component skill with full structure",
		UseCases: []string{
			"Document generation",
			"Multi-step workflows",
			"Research and analysis",
			"Complex integrations",
		},
	},
}

// Kinds returns all template kinds in ascending order of complexity.
func Kinds() []Kind {
	return []Kind{KindSimple, KindIntermediate, KindComplex}
}

// Describe returns the registry description for a kind.
func Describe(k Kind) (description string, useCases []string, ok bool) {
	info, ok := registry[k]
	if !ok {
		return "", nil, false
	}
	return info.Description, info.UseCases, true
}

// ValidKind reports whether k names a registered template kind.
func ValidKind(k Kind) bool {
	_, ok := registry[k]
	return ok
}
