package polycipher

import "errors"

var (
	// ErrEmptySequence indicates an operation on an empty symbol sequence.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrDuplicateSymbol indicates an alphabet with a repeated symbol.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrInvalidStep indicates a zero rotation step.
	ErrInvalidStep = errors.New("rotation step must be non-zero")

	// ErrInvalidLength indicates a non-positive sequence length.
	ErrInvalidLength = errors.New("length must be positive")

	// ErrInvalidShift indicates a missing shift or one that does not rotate.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrInvalidKeyword indicates a missing or unusable keyword.
	ErrInvalidKeyword = errors.New("invalid keyword")

	// ErrShapeMismatch indicates a matrix with rows of differing length.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingMetadata indicates a concept lacking the parameters needed for composition.
	ErrMissingMetadata = errors.New("missing concept metadata")

	// ErrConceptualConflict indicates two concepts of the same family.
	ErrConceptualConflict = errors.New("conceptual conflict")

	// ErrUnknownCipher indicates an unsupported cipher kind.
	ErrUnknownCipher = errors.New("unknown cipher kind")

	// ErrUnknownAlphabet indicates an unknown preset alphabet name.
	ErrUnknownAlphabet = errors.New("unknown alphabet")

	// ErrInvalidStrategy indicates an unusable alternation strategy.
	ErrInvalidStrategy = errors.New("invalid strategy")
)
