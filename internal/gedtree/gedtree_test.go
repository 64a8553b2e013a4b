package gedtree

import (
	"errors"
	"testing"

	"github.com/dgallion1/gedgest/internal/gedline"
)

func mkLines(t *testing.T, src string) []gedline.Line {
	t.Helper()
	lines, _, err := gedline.ReadLines([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestBuildNesting(t *testing.T) {
	root, err := Build(mkLines(t, "0 HEAD\n1 GEDC\n2 VERS 5.5.1\n1 CHAR UTF-8\n0 TRLR\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 root records, got %d", len(root.Children))
	}
	head := root.Children[0]
	if head.Tag != "HEAD" || len(head.Children) != 2 {
		t.Fatalf("unexpected HEAD: %v children=%d", head, len(head.Children))
	}
	gedc := head.Children[0]
	if gedc.Tag != "GEDC" || len(gedc.Children) != 1 || gedc.Children[0].Value != "5.5.1" {
		t.Errorf("unexpected GEDC subtree: %v", gedc)
	}
}

func TestBuildParentBackRefsAndLevels(t *testing.T) {
	root, err := Build(mkLines(t, "0 HEAD\n1 GEDC\n2 VERS 5.5\n1 CHAR ASCII\n"))
	if err != nil {
		t.Fatal(err)
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if c.Parent != n {
				t.Errorf("%v: parent back-reference broken", c)
			}
			if c.Level != n.Level+1 {
				t.Errorf("%v: level %d under parent level %d", c, c.Level, n.Level)
			}
			walk(c)
		}
	}
	walk(root)
}

func TestBuildLevelSkipIsFatal(t *testing.T) {
	_, err := Build(mkLines(t, "0 HEAD\n1 GEDC\n3 VERS 5.5.1\n"))
	var se *gedline.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
	if se.Line != 3 {
		t.Errorf("error line = %d, want 3", se.Line)
	}
}

func TestBuildFirstLineMustBeLevelZero(t *testing.T) {
	_, err := Build(mkLines(t, "1 GEDC\n"))
	var se *gedline.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuralError, got %v", err)
	}
}
