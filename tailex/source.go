package tailex

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content []byte) *Source {
	str := string(content)
	return &Source{
		Name:    name,
		Content: str,
		Lines:   strings.Split(str, "\n"),
	}
}

// Lexer returns a lexer sharing the source content.
func (s *Source) Lexer(options *Options) *Lexer {
	return NewString(s.Content, options)
}
