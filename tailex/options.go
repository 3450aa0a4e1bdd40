package tailex

type Options struct {
	// FoldNegativeLiterals lexes a '-' immediately followed by a digit as the
	// sign of one Integer token. When false '-' is always an operator and
	// sign folding is left to the parser.
	FoldNegativeLiterals bool

	// SkipTrivia drops Whitespace, Newline and comment tokens from Next.
	// The remaining stream no longer round-trips to the source.
	SkipTrivia bool
}
