package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/treepick/internal/document"
)

const treeIndent = "  "

var (
	ErrIndent        = errors.New("bad indentation")
	ErrDuplicateName = errors.New("duplicate name")
)

type treeNode struct {
	name     string
	children []*treeNode
	names    map[string]struct{}
}

func (t *treeNode) add(child *treeNode) bool {
	if t.names == nil {
		t.names = map[string]struct{}{}
	}
	if _, dup := t.names[child.name]; dup {
		return false
	}
	t.names[child.name] = struct{}{}
	t.children = append(t.children, child)
	return true
}

// parseTree reads the indent tree format: one name per line, two spaces per
// level of depth. Names with children become objects, names without become
// null leaves. Blank lines are skipped and trailing spaces belong to the name.
func parseTree(data []byte) (*document.Node, error) {
	root := &treeNode{}
	stack := []*treeNode{root}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := 0
		for strings.HasPrefix(line, treeIndent) {
			line = line[len(treeIndent):]
			depth++
		}
		if line[0] == ' ' || line[0] == '\t' {
			return nil, fmt.Errorf("line %d: %w: indent must be a multiple of two spaces", lineNo, ErrIndent)
		}
		if depth > len(stack)-1 {
			return nil, fmt.Errorf("line %d: %w: depth %d, expected at most %d", lineNo, ErrIndent, depth, len(stack)-1)
		}
		stack = stack[:depth+1]
		node := &treeNode{name: line}
		if !stack[depth].add(node) {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrDuplicateName, line)
		}
		stack = append(stack, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(root.children) == 0 {
		return nil, ErrEmptyInput
	}
	return root.document(), nil
}

func (t *treeNode) document() *document.Node {
	if len(t.children) == 0 {
		return document.Null()
	}
	fields := make([]document.Field, len(t.children))
	for i, c := range t.children {
		fields[i] = document.F(c.name, c.document())
	}
	return document.Object(fields...)
}
