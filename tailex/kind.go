package tailex

type Kind uint8

const (
	Invalid Kind = iota
	KindKeyword
	KindIdentifier
	KindInteger
	KindString
	KindLineComment
	KindBlockComment
	KindOperator
	KindWhitespace
	KindNewline
	KindError

	numKinds
)

var kindNames = [numKinds]string{
	Invalid:          "Invalid",
	KindKeyword:      "Keyword",
	KindIdentifier:   "Identifier",
	KindInteger:      "Integer",
	KindString:       "String",
	KindLineComment:  "LineComment",
	KindBlockComment: "BlockComment",
	KindOperator:     "Operator",
	KindWhitespace:   "Whitespace",
	KindNewline:      "Newline",
	KindError:        "Error",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}

// IsTrivia reports whether tokens of this kind carry no syntactic weight.
func (k Kind) IsTrivia() bool {
	switch k {
	case KindWhitespace, KindNewline, KindLineComment, KindBlockComment:
		return true
	}
	return false
}
