package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

}

func TestFirstMissing(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	if v := First[int](loader, "missing"); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestFirstBadFile(t *testing.T) {
	loader := NewLoader([]string{"bad.cue"}, testSchema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[string](loader, "str")
}
