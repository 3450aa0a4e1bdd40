package tailex

type Keyword uint8

const (
	NotKeyword Keyword = iota
	Let
	Mut
	Const
	If
	Elif
	Else
	For
	Of
	While
	When
	Case
	And
	Or
	Fn
	Break
	Continue
	Return
	Trait
	Ext
	Impl
	Enum
	As
	Export

	numKeywords
)

var keywordSpellings = [numKeywords]string{
	NotKeyword: "",
	Let:        "let",
	Mut:        "mut",
	Const:      "const",
	If:         "if",
	Elif:       "elif",
	Else:       "else",
	For:        "for",
	Of:         "of",
	While:      "while",
	When:       "when",
	Case:       "case",
	And:        "and",
	Or:         "or",
	Fn:         "fn",
	Break:      "break",
	Continue:   "continue",
	Return:     "return",
	Trait:      "trait",
	Ext:        "ext",
	Impl:       "impl",
	Enum:       "enum",
	As:         "as",
	Export:     "export",
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, numKeywords)
	for kw := Let; kw < numKeywords; kw++ {
		m[keywordSpellings[kw]] = kw
	}
	return m
}()

func (k Keyword) String() string {
	if k >= numKeywords {
		return "Keyword(?)"
	}
	return keywordSpellings[k]
}

// LookupKeyword matches whole, case-sensitive keyword spellings only.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}
