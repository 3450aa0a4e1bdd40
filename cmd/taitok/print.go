package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reusee/taitok/tailex"
)

type printer func(name string, token tailex.Token) error

func textPrinter(w io.Writer) printer {
	return func(name string, token tailex.Token) error {
		span := token.Span
		_, err := fmt.Fprintf(w, "%s:%d:%d\t[%d,%d)\t%v\n",
			name, span.Line, span.ColumnStart+1,
			span.StartOffset, span.EndOffset,
			token,
		)
		return err
	}
}

type jsonToken struct {
	File     string      `json:"file"`
	Kind     string      `json:"kind"`
	Keyword  string      `json:"keyword,omitempty"`
	Operator string      `json:"operator,omitempty"`
	Error    string      `json:"error,omitempty"`
	Raw      string      `json:"raw"`
	Text     string      `json:"text,omitempty"`
	Int      *int64      `json:"int,omitempty"`
	Span     tailex.Span `json:"span"`
}

func jsonPrinter(w io.Writer) printer {
	encoder := json.NewEncoder(w)
	return func(name string, token tailex.Token) error {
		v := jsonToken{
			File: name,
			Kind: token.Kind.String(),
			Raw:  token.Raw,
			Text: token.Text,
			Span: token.Span,
		}
		switch token.Kind {
		case tailex.KindKeyword:
			v.Keyword = token.Keyword.String()
		case tailex.KindOperator:
			v.Operator = token.Operator.Name()
		case tailex.KindError:
			v.Error = token.Error.String()
		case tailex.KindInteger:
			v.Int = &token.Int
		}
		return encoder.Encode(v)
	}
}
