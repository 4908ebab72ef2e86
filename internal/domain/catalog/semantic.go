package catalog

import (
	"strings"

	"github.com/ethoslab/archetype/internal/domain/types"
)

// semanticTable maps normalized (lowercased, trimmed) trait words to their
// archetype. The table maps by meaning, not position: the same option slot
// does not hold the same archetype's trait on every question.
var semanticTable = map[string]types.Archetype{
	// Dove: peaceful, supportive, patient, loyal, team-oriented
	"patient":       types.Dove,
	"peaceful":      types.Dove,
	"supportive":    types.Dove,
	"charitable":    types.Dove,
	"selfless":      types.Dove,
	"compassionate": types.Dove,
	"sincere":       types.Dove,
	"dependable":    types.Dove,
	"respectful":    types.Dove,
	"willing":       types.Dove,
	"consistent":    types.Dove,
	"dependent":     types.Dove,
	"compromising":  types.Dove,
	"risk averse":   types.Dove,
	"fearful":       types.Dove,
	"doormat":       types.Dove,
	"friendly":      types.Dove,
	"loyal":         types.Dove,
	"team-oriented": types.Dove,
	"shy":           types.Dove,
	"pleasant":      types.Dove,
	"moralistic":    types.Dove,
	"idealistic":    types.Dove,

	// Owl: logical, detail-oriented, methodical, perfectionist, analytical
	"logical":         types.Owl,
	"thorough":        types.Owl,
	"methodical":      types.Owl,
	"analytical":      types.Owl,
	"accurate":        types.Owl,
	"meticulous":      types.Owl,
	"procedural":      types.Owl,
	"conventional":    types.Owl,
	"practical":       types.Owl,
	"serious":         types.Owl,
	"curious":         types.Owl,
	"perfectionist":   types.Owl,
	"minimize risk":   types.Owl,
	"predictable":     types.Owl,
	"unemotional":     types.Owl,
	"reclusive":       types.Owl,
	"detail-oriented": types.Owl,
	"rule-following":  types.Owl,
	"seeking":         types.Owl,
	"elaborate":       types.Owl,
	"awkward":         types.Owl,
	"withdrawn":       types.Owl,
	"uninvolved":      types.Owl,

	// Peacock: talkative, enthusiastic, optimistic, social, charismatic
	"talkative":         types.Peacock,
	"enthusiastic":      types.Peacock,
	"optimistic":        types.Peacock,
	"charismatic":       types.Peacock,
	"social":            types.Peacock,
	"people focused":    types.Peacock,
	"influential":       types.Peacock,
	"motivator":         types.Peacock,
	"passionate":        types.Peacock,
	"cheerful":          types.Peacock,
	"adventurous":       types.Peacock,
	"interested":        types.Peacock,
	"excitable":         types.Peacock,
	"braggart":          types.Peacock,
	"impulsive":         types.Peacock,
	"undisciplined":     types.Peacock,
	"interrupts":        types.Peacock,
	"rash":              types.Peacock,
	"showy":             types.Peacock,
	"attention-seeking": types.Peacock,
	"creative":          types.Peacock,
	"reacting":          types.Peacock,

	// Shark: bold, decisive, dominant, direct, challenge-driven
	"bold":             types.Shark,
	"decisive":         types.Shark,
	"dominant":         types.Shark,
	"driven":           types.Shark,
	"persistent":       types.Shark,
	"powerful":         types.Shark,
	"competitive":      types.Shark,
	"demanding":        types.Shark,
	"bossy":            types.Shark,
	"assertive":        types.Shark,
	"goal oriented":    types.Shark,
	"strong willed":    types.Shark,
	"motivated":        types.Shark,
	"risk taker":       types.Shark,
	"tough":            types.Shark,
	"forward":          types.Shark,
	"harsh":            types.Shark,
	"restless":         types.Shark,
	"severe":           types.Shark,
	"myopic":           types.Shark,
	"hotheaded":        types.Shark,
	"direct":           types.Shark,
	"challenge-driven": types.Shark,
	"achieving":        types.Shark,
	"vengeful":         types.Shark,
	"unsympathetic":    types.Shark,
	"independent":      types.Shark,
}

// NormalizeTrait applies the canonical normalization used for semantic
// lookups: trim surrounding whitespace and lowercase.
func NormalizeTrait(trait string) string {
	return strings.ToLower(strings.TrimSpace(trait))
}

// ArchetypeForTrait resolves a trait word to its archetype via the semantic
// table. The input is normalized before lookup. The second return is false
// for unmapped traits.
func ArchetypeForTrait(trait string) (types.Archetype, bool) {
	a, ok := semanticTable[NormalizeTrait(trait)]
	return a, ok
}
