package testutil

import (
	"fmt"
	"testing"
)

func TestRunArchive2(t *testing.T) {
	src := []byte(`comment
-- a.in --
1
-- a.out --
2
-- b.in --
5
-- b.out --
10
-- c.out --
ignored
`)
	ar := ParseTxtar(src, "test.txt")
	if len(ar.Lines) != 5 || ar.Lines[0] != 2 || ar.Lines[1] != 4 {
		t.Fatal(ar.Lines)
	}

	names := []string{}
	RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		names = append(names, name)
		var a, b int
		if _, err := fmt.Sscan(string(in), &a); err != nil {
			return err
		}
		if _, err := fmt.Sscan(string(out), &b); err != nil {
			return err
		}
		if a*2 != b {
			return fmt.Errorf("%v*2 != %v", a, b)
		}
		return nil
	})
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatal(names)
	}
}

func TestTrimLineSpaces(t *testing.T) {
	s := TrimLineSpaces("  a b \n\n\t c\n")
	if s != "a b\nc" {
		t.Fatalf("%q", s)
	}
}
