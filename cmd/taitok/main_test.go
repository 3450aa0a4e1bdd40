package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taitok/lexconfigs"
	"github.com/reusee/taitok/modes"
	"github.com/reusee/taitok/tailex"
)

func TestTextPrinter(t *testing.T) {
	buf := new(bytes.Buffer)
	output := textPrinter(buf)
	for _, token := range tailex.ScanAll([]byte("let x"), nil) {
		if err := output("a.tai", token); err != nil {
			t.Fatal(err)
		}
	}
	expected := "a.tai:1:1\t[0,3)\tKeyword(let)\n" +
		"a.tai:1:4\t[3,4)\tWhitespace(\" \")\n" +
		"a.tai:1:5\t[4,5)\tIdentifier(\"x\")\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}
}

func TestJSONPrinter(t *testing.T) {
	buf := new(bytes.Buffer)
	output := jsonPrinter(buf)
	for _, token := range tailex.ScanAll([]byte("x<<=0"), nil) {
		if err := output("a.tai", token); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %v", lines)
	}
	var v jsonToken
	if err := json.Unmarshal([]byte(lines[1]), &v); err != nil {
		t.Fatal(err)
	}
	if v.Kind != "Operator" || v.Operator != "LeftShiftAssign" || v.Raw != "<<=" {
		t.Fatalf("got %+v", v)
	}
	if v.Span.StartOffset != 1 || v.Span.EndOffset != 4 {
		t.Fatalf("got %+v", v.Span)
	}
	if err := json.Unmarshal([]byte(lines[2]), &v); err != nil {
		t.Fatal(err)
	}
	if v.Int == nil || *v.Int != 0 {
		t.Fatalf("got %+v", v)
	}
}

func TestLexFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, content := range []string{
		"let a = 1\n",
		"fn f() -> x\n",
		"\"unterminated",
	} {
		path := filepath.Join(dir, string(rune('a'+i))+".tai")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(dir, "missing.tai"))

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() lexconfigs.ConfigPaths {
			return nil
		},
	).Call(func(
		lex tailex.Lex,
	) {
		results := lexFiles(t.Context(), paths, 2, lex)
		if len(results) != 4 {
			t.Fatalf("got %d", len(results))
		}
		for i, result := range results[:3] {
			if result.err != nil {
				t.Fatal(result.err)
			}
			if result.source.Name != paths[i] {
				t.Fatalf("got %s", result.source.Name)
			}
			if tailex.Render(result.tokens) != result.source.Content {
				t.Fatal()
			}
		}
		if err := tailex.Errors(results[2].tokens, results[2].source); err == nil {
			t.Fatal("should error")
		}
		if results[3].err == nil || results[3].source != nil {
			t.Fatalf("got %+v", results[3])
		}
	})
}
