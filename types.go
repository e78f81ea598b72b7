package polycipher

// UnknownSymbol is the sentinel emitted for runes outside the active alphabet.
const UnknownSymbol = '?'

// =============================================================================
// Table Modes
// =============================================================================

// Mode selects the row-level transform applied when a rotation table is built.
type Mode string

const (
	// ModeNormal keeps rows as generated.
	ModeNormal Mode = "normal"
	// ModeMirror reverses every row.
	ModeMirror Mode = "mirror"
)

// Valid reports whether m is a known mode. The empty mode counts as normal.
func (m Mode) Valid() bool {
	switch m {
	case "", ModeNormal, ModeMirror:
		return true
	}
	return false
}

// =============================================================================
// Concept Identity
// =============================================================================

// Family is the semantic group a concept belongs to.
type Family string

const (
	FamilyEngine      Family = "engine"
	FamilyTransform   Family = "transform"
	FamilyArrangement Family = "arrangement"
	FamilyComposite   Family = "composite"
)

// Concept names produced by the factories in package concept.
const (
	NameRot           = "ROT"
	NameVigenere      = "VIGENERE"
	NameMultiVigenere = "MULTI_VIGENERE"
	NameIdentity      = "IDENTITY"
	NameReverse       = "REVERSE"
)

// =============================================================================
// Alternation Strategies
// =============================================================================

// StrategyKind names an alternation strategy for multi-key ciphers.
type StrategyKind string

const (
	StrategyRoundRobin StrategyKind = "round-robin"
	StrategyPattern    StrategyKind = "pattern"
	StrategyStatic     StrategyKind = "static"
)

// =============================================================================
// Cipher Specification
// =============================================================================

// CipherKind identifies a cipher construction.
type CipherKind string

const (
	KindRot           CipherKind = "rot"
	KindCaesar        CipherKind = "caesar"
	KindVigenere      CipherKind = "vigenere"
	KindMultiVigenere CipherKind = "multi-vigenere"
)

// DefaultCaesarShift is used for KindCaesar when no shift is given.
const DefaultCaesarShift = 3

// Direction selects encryption or decryption.
type Direction string

const (
	Encrypt Direction = "encrypt"
	Decrypt Direction = "decrypt"
)

// Spec is a declarative description of a cipher run.
// Either Alphabet (literal symbols) or AlphabetName (a preset) must be set.
type Spec struct {
	Kind         CipherKind   `json:"kind" yaml:"kind"`
	Text         string       `json:"text,omitempty" yaml:"text,omitempty"`
	Alphabet     string       `json:"alphabet,omitempty" yaml:"alphabet,omitempty"`
	AlphabetName string       `json:"alphabet_name,omitempty" yaml:"alphabet_name,omitempty"`
	Keyword      string       `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Keys         []string     `json:"keys,omitempty" yaml:"keys,omitempty"`
	Shift        *int         `json:"shift,omitempty" yaml:"shift,omitempty"`
	Step         int          `json:"step,omitempty" yaml:"step,omitempty"` // Table rotation step, 0 means 1
	Mode         Mode         `json:"mode,omitempty" yaml:"mode,omitempty"`
	Strategy     StrategyKind `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Pattern      []int        `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	StaticIndex  int          `json:"static_index,omitempty" yaml:"static_index,omitempty"`
	Shuffle      bool         `json:"shuffle,omitempty" yaml:"shuffle,omitempty"`
	Seed         string       `json:"seed,omitempty" yaml:"seed,omitempty"` // Hex, fixes the shuffle
}
