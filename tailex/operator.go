package tailex

type Operator uint8

const (
	NotOperator Operator = iota

	Plus           // +
	Minus          // -
	Asterisk       // *
	Solidus        // /
	ReverseSolidus // \
	Ampersand      // &
	AtMark         // @
	Hash           // #
	Dollar         // $
	Percent        // %
	Tilde          // ~
	Circumflex     // ^
	VerticalLine   // |
	Apostrophe     // '
	LeftParen      // (
	RightParen     // )
	LeftBracket    // [
	RightBracket   // ]
	LeftBrace      // {
	RightBrace     // }
	LessThan       // <
	GreaterThan    // >
	FullStop       // .
	Comma          // ,
	Exclamation    // !
	Question       // ?
	Colon          // :
	Semicolon      // ;
	Assign         // =

	Equal          // ==
	NotEqual       // !=
	LessEqual      // <=
	GreaterEqual   // >=
	PlusAssign     // +=
	MinusAssign    // -=
	MultiplyAssign // *=
	DivideAssign   // /=
	PercentAssign  // %=
	XorAssign      // ^=
	AndAssign      // &=
	OrAssign       // |=
	SingleArrow    // ->
	DoubleArrow    // =>
	LeftShift      // <<
	RightShift     // >>

	LeftShiftAssign  // <<=
	RightShiftAssign // >>=

	numOperators
)

var operatorSpellings = [numOperators]string{
	NotOperator:    "",
	Plus:           "+",
	Minus:          "-",
	Asterisk:       "*",
	Solidus:        "/",
	ReverseSolidus: `\`,
	Ampersand:      "&",
	AtMark:         "@",
	Hash:           "#",
	Dollar:         "$",
	Percent:        "%",
	Tilde:          "~",
	Circumflex:     "^",
	VerticalLine:   "|",
	Apostrophe:     "'",
	LeftParen:      "(",
	RightParen:     ")",
	LeftBracket:    "[",
	RightBracket:   "]",
	LeftBrace:      "{",
	RightBrace:     "}",
	LessThan:       "<",
	GreaterThan:    ">",
	FullStop:       ".",
	Comma:          ",",
	Exclamation:    "!",
	Question:       "?",
	Colon:          ":",
	Semicolon:      ";",
	Assign:         "=",

	Equal:          "==",
	NotEqual:       "!=",
	LessEqual:      "<=",
	GreaterEqual:   ">=",
	PlusAssign:     "+=",
	MinusAssign:    "-=",
	MultiplyAssign: "*=",
	DivideAssign:   "/=",
	PercentAssign:  "%=",
	XorAssign:      "^=",
	AndAssign:      "&=",
	OrAssign:       "|=",
	SingleArrow:    "->",
	DoubleArrow:    "=>",
	LeftShift:      "<<",
	RightShift:     ">>",

	LeftShiftAssign:  "<<=",
	RightShiftAssign: ">>=",
}

var operatorNames = [numOperators]string{
	NotOperator:    "NotOperator",
	Plus:           "Plus",
	Minus:          "Minus",
	Asterisk:       "Asterisk",
	Solidus:        "Solidus",
	ReverseSolidus: "ReverseSolidus",
	Ampersand:      "Ampersand",
	AtMark:         "AtMark",
	Hash:           "Hash",
	Dollar:         "Dollar",
	Percent:        "Percent",
	Tilde:          "Tilde",
	Circumflex:     "Circumflex",
	VerticalLine:   "VerticalLine",
	Apostrophe:     "Apostrophe",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBracket:    "LeftBracket",
	RightBracket:   "RightBracket",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	LessThan:       "LessThan",
	GreaterThan:    "GreaterThan",
	FullStop:       "FullStop",
	Comma:          "Comma",
	Exclamation:    "Exclamation",
	Question:       "Question",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Assign:         "Assign",

	Equal:          "Equal",
	NotEqual:       "NotEqual",
	LessEqual:      "LessEqual",
	GreaterEqual:   "GreaterEqual",
	PlusAssign:     "PlusAssign",
	MinusAssign:    "MinusAssign",
	MultiplyAssign: "MultiplyAssign",
	DivideAssign:   "DivideAssign",
	PercentAssign:  "PercentAssign",
	XorAssign:      "XorAssign",
	AndAssign:      "AndAssign",
	OrAssign:       "OrAssign",
	SingleArrow:    "SingleArrow",
	DoubleArrow:    "DoubleArrow",
	LeftShift:      "LeftShift",
	RightShift:     "RightShift",

	LeftShiftAssign:  "LeftShiftAssign",
	RightShiftAssign: "RightShiftAssign",
}

var operators = func() map[string]Operator {
	m := make(map[string]Operator, numOperators)
	for op := Plus; op < numOperators; op++ {
		m[operatorSpellings[op]] = op
	}
	return m
}()

// String returns the fixed source spelling.
func (o Operator) String() string {
	if o >= numOperators {
		return "Operator(?)"
	}
	return operatorSpellings[o]
}

func (o Operator) Name() string {
	if o >= numOperators {
		return "Operator(?)"
	}
	return operatorNames[o]
}

func LookupOperator(text string) (Operator, bool) {
	op, ok := operators[text]
	return op, ok
}
