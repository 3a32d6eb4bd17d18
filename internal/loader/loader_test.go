package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/treepick/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(n *document.Node) []string {
	names := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		names[i] = f.Name
	}
	return names
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      Auto,
		"auto":  Auto,
		"JSON":  JSON,
		" yaml": YAML,
		"yml":   YAML,
		"tree":  Tree,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetect(t *testing.T) {
	assert.Equal(t, JSON, Detect("data.json", nil))
	assert.Equal(t, YAML, Detect("conf.YML", nil))
	assert.Equal(t, Tree, Detect("cmds.tree", nil))
	assert.Equal(t, JSON, Detect("", []byte("  \n[1]")))
	assert.Equal(t, JSON, Detect("-", []byte(`{"a":1}`)))
	assert.Equal(t, Auto, Detect("", []byte("a: 1")))
}

func TestParseJSONKeepsOrder(t *testing.T) {
	root, err := Parse(context.Background(), []byte(`{"zeta": 1, "alpha": {"b": true, "a": null}, "mid": ["x", 2.50]}`), JSON, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, fieldNames(root))
	alpha, ok := root.Field("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, fieldNames(alpha))

	zeta, _ := root.Field("zeta")
	assert.Equal(t, document.KindNumber, zeta.Kind)
	assert.Equal(t, "1", zeta.String())

	mid, _ := root.Field("mid")
	require.Equal(t, document.KindArray, mid.Kind)
	assert.Equal(t, "x", mid.Items[0].Str)
	assert.Equal(t, "2.50", mid.Items[1].Str)
}

func TestParseJSONDuplicateKeyLastValueWins(t *testing.T) {
	root, err := Parse(context.Background(), []byte(`{"a": 1, "b": 2, "a": 3}`), JSON, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fieldNames(root))
	a, _ := root.Field("a")
	assert.Equal(t, "3", a.Str)
}

func TestParseJSONStreamBecomesArray(t *testing.T) {
	root, err := Parse(context.Background(), []byte("{\"n\":1}\n{\"n\":2}\n"), JSON, "")
	require.NoError(t, err)
	require.Equal(t, document.KindArray, root.Kind)
	assert.Len(t, root.Items, 2)
}

func TestParseJSONErrors(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`{"a": [1, 2`), JSON, "")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "json: "), err.Error())

	_, err = Parse(context.Background(), []byte(`{"a" 1}`), JSON, "")
	require.Error(t, err)

	_, err = Parse(context.Background(), []byte("   "), JSON, "")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestParseYAMLKeepsOrder(t *testing.T) {
	src := `
systemctl:
  --user:
    restart: [signal, firefox]
  --system:
    restart:
      - iwd
      - docker
count: 3
enabled: yes
ratio: 0.5
nothing: ~
when: 2024-01-02
`
	root, err := Parse(context.Background(), []byte(src), YAML, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"systemctl", "count", "enabled", "ratio", "nothing", "when"}, fieldNames(root))

	systemctl, _ := root.Field("systemctl")
	assert.Equal(t, []string{"--user", "--system"}, fieldNames(systemctl))

	count, _ := root.Field("count")
	assert.Equal(t, document.KindNumber, count.Kind)
	nothing, _ := root.Field("nothing")
	assert.Equal(t, document.KindNull, nothing.Kind)
	when, _ := root.Field("when")
	assert.Equal(t, document.KindString, when.Kind)
	assert.Equal(t, "2024-01-02", when.Str)
	ratio, _ := root.Field("ratio")
	assert.Equal(t, "0.5", ratio.Str)
}

func TestParseYAMLAliasesAndMerge(t *testing.T) {
	src := `
base: &base
  host: localhost
  port: 80
dev:
  <<: *base
  port: 8080
copy: *base
`
	root, err := Parse(context.Background(), []byte(src), YAML, "")
	require.NoError(t, err)

	dev, _ := root.Field("dev")
	assert.Equal(t, []string{"host", "port"}, fieldNames(dev))
	port, _ := dev.Field("port")
	assert.Equal(t, "8080", port.Str)

	cp, _ := root.Field("copy")
	assert.Equal(t, []string{"host", "port"}, fieldNames(cp))
}

func TestParseYAMLAliasFanOutIsShared(t *testing.T) {
	var src strings.Builder
	src.WriteString(`a: &a ["x","x","x","x","x","x","x","x","x","x"]` + "\n")
	names := "abcdefghij"
	for i := 1; i < len(names); i++ {
		ref := "*" + string(names[i-1])
		refs := strings.TrimSuffix(strings.Repeat(ref+",", 10), ",")
		src.WriteString(string(names[i]) + ": &" + string(names[i]) + " [" + refs + "]\n")
	}

	root, err := Parse(context.Background(), []byte(src.String()), YAML, "")
	require.NoError(t, err)
	assert.Equal(t, strings.Split(names, ""), fieldNames(root))

	last, _ := root.Field("j")
	prev, _ := root.Field("i")
	require.Len(t, last.Items, 10)
	for _, item := range last.Items {
		assert.Same(t, prev, item)
	}
}

func TestParseYAMLAliasCycle(t *testing.T) {
	for name, src := range map[string]string{
		"sequence": "a: &a [*a]\n",
		"mapping":  "a: &a\n  self: *a\n",
		"merge":    "a: &a\n  <<: *a\n  x: 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(src), YAML, "")
			require.ErrorIs(t, err, ErrAliasCycle)
		})
	}
}

func TestParseYAMLMergeDoesNotAlterAnchor(t *testing.T) {
	src := `
base: &base
  host: localhost
  port: 80
dev:
  <<: *base
  port: 8080
`
	root, err := Parse(context.Background(), []byte(src), YAML, "")
	require.NoError(t, err)

	base, _ := root.Field("base")
	port, _ := base.Field("port")
	assert.Equal(t, "80", port.Str)
}

func TestParseYAMLMultiDocument(t *testing.T) {
	root, err := Parse(context.Background(), []byte("a: 1\n---\nb: 2\n"), YAML, "")
	require.NoError(t, err)
	require.Equal(t, document.KindArray, root.Kind)
	require.Len(t, root.Items, 2)
	assert.Equal(t, []string{"b"}, fieldNames(root.Items[1]))
}

func TestParseTree(t *testing.T) {
	src := "systemctl\n  --user\n    restart\n      pulseaudio\n\n  --system\n    restart\n      iwd\n"
	root, err := Parse(context.Background(), []byte(src), Tree, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"systemctl"}, fieldNames(root))
	systemctl, _ := root.Field("systemctl")
	assert.Equal(t, []string{"--user", "--system"}, fieldNames(systemctl))

	system, _ := systemctl.Field("--system")
	restart, _ := system.Field("restart")
	iwd, ok := restart.Field("iwd")
	require.True(t, ok)
	assert.Equal(t, document.KindNull, iwd.Kind)
	assert.Equal(t, document.Leaf, document.Classify(iwd))
}

func TestParseTreeFlatList(t *testing.T) {
	root, err := Parse(context.Background(), []byte("some\nlist\nof  \nnodes"), Tree, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"some", "list", "of  ", "nodes"}, fieldNames(root))
}

func TestParseTreeErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"indented first line": {"  indented", ErrIndent},
		"skipped level":       {"a\n    b", ErrIndent},
		"odd indent":          {"a\n   b", ErrIndent},
		"tab indent":          {"a\n\tb", ErrIndent},
		"duplicate sibling":   {"a\n  b\n  b", ErrDuplicateName},
		"blank":               {"\n  \n", ErrEmptyInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseTree([]byte(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseAutoSniffsContent(t *testing.T) {
	ctx := context.Background()

	root, err := Parse(ctx, []byte(`["a","b"]`), Auto, "")
	require.NoError(t, err)
	assert.Equal(t, document.KindArray, root.Kind)

	root, err = Parse(ctx, []byte("a: 1\nb: 2\n"), Auto, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fieldNames(root))

	root, err = Parse(ctx, []byte("systemctl\n  --user\n  --system\n"), Auto, "")
	require.NoError(t, err)
	systemctl, ok := root.Field("systemctl")
	require.True(t, ok)
	assert.Equal(t, []string{"--user", "--system"}, fieldNames(systemctl))
}

func TestLoadAndLoadFile(t *testing.T) {
	ctx := context.Background()
	root, err := Load(ctx, strings.NewReader(`{"k": "v"}`), Auto, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, fieldNames(root))

	path := filepath.Join(t.TempDir(), "cmds.tree")
	require.NoError(t, os.WriteFile(path, []byte("a\n  b\n"), 0o644))
	root, err = LoadFile(ctx, path, Auto)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, fieldNames(root))

	_, err = LoadFile(ctx, filepath.Join(t.TempDir(), "missing.json"), Auto)
	require.Error(t, err)
}
