package resources

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v4"
	"golang.org/x/text/language"
)

// Format is the output format of an export.
type Format string

const (
	FormatJSON       Format = "json"
	FormatTypeScript Format = "ts"
)

// ParseFormat returns the format for s, the empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTypeScript:
		return FormatTypeScript, nil
	}

	return "", fmt.Errorf("Unsupported resource format %q", s)
}

func init() {
	// Filters should be registered in the init() function
	_ = pongo2.RegisterFilter("jskey", jsKey)
	_ = pongo2.RegisterFilter("jsstring", jsString)
}

const exportSource = `{% if ts %}export const {{ root }} = {{ lbrace }}{% else %}{{ lbrace }}{% endif %}
{% for l in lines %}{{ l.Indent }}{% if l.Close %}{{ rbrace }}{% else %}{{ l.Key|jskey:ts }}: {% if l.Open %}{{ lbrace }}{% else %}{{ l.Value|jsstring }}{% endif %}{% endif %}{% if l.Comma %},{% endif %}
{% endfor %}{{ rbrace }}{% if ts %};{% endif %}
`

var exportTemplate = sync.OnceValues(func() (*pongo2.Template, error) {
	return pongo2.FromString(exportSource)
})

type node struct {
	value    string
	children map[string]*node
}

// line is one rendered line of the export, either a "key: value", the
// opening "key: {" of a nested object or its closing brace.
type line struct {
	Indent string
	Key    string
	Value  string
	Open   bool
	Close  bool
	Comma  bool
}

// Export writes all labels translated to lang as a nested object, one level
// per key segment. The first key segment names the exported TypeScript
// constant, the JSON export holds the content of that object.
func (t *Translator) Export(w io.Writer, lang language.Tag, format Format) error {
	tpl, err := exportTemplate()
	if err != nil {
		return fmt.Errorf("Failed to parse export template: %w", err)
	}

	root := &node{children: map[string]*node{}}
	for _, key := range t.keys {
		err := root.insert(strings.Split(key, "."), t.Translate(lang, key))
		if err != nil {
			return err
		}
	}

	rootName, content, err := root.single()
	if err != nil {
		return err
	}

	err = tpl.ExecuteWriter(pongo2.Context{
		"ts":     format == FormatTypeScript,
		"root":   rootName,
		"lines":  content.lines(1),
		"lbrace": "{",
		"rbrace": "}",
	}, w)
	if err != nil {
		return fmt.Errorf("Failed to render resources: %w", err)
	}

	return nil
}

func (n *node) insert(path []string, value string) error {
	child, ok := n.children[path[0]]
	if !ok {
		child = &node{}
		n.children[path[0]] = child
	}

	if len(path) == 1 {
		if child.children != nil {
			return fmt.Errorf("Resource key segment %q is both a label and a group", path[0])
		}

		child.value = value
		return nil
	}

	if ok && child.children == nil {
		return fmt.Errorf("Resource key segment %q is both a label and a group", path[0])
	}

	if child.children == nil {
		child.children = map[string]*node{}
	}

	return child.insert(path[1:], value)
}

func (n *node) single() (string, *node, error) {
	if len(n.children) != 1 {
		return "", nil, fmt.Errorf("Resource keys must share a single root, got %d", len(n.children))
	}

	for name, child := range n.children {
		if child.children == nil {
			return "", nil, fmt.Errorf("Resource root %q is not a group", name)
		}

		return name, child, nil
	}

	return "", nil, nil
}

func (n *node) lines(depth int) []line {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}

	sort.Strings(names)

	indent := strings.Repeat("  ", depth)
	var lines []line
	for i, name := range names {
		child := n.children[name]
		comma := i < len(names)-1

		if child.children == nil {
			lines = append(lines, line{Indent: indent, Key: name, Value: child.value, Comma: comma})
			continue
		}

		lines = append(lines, line{Indent: indent, Key: name, Open: true})
		lines = append(lines, child.lines(depth+1)...)
		lines = append(lines, line{Indent: indent, Close: true, Comma: comma})
	}

	return lines
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey is a pongo2 filter rendering an object key. Keys are quoted unless
// the parameter is true and the key is a valid identifier.
func jsKey(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	key := in.String()
	if param.Bool() && identifier.MatchString(key) {
		return pongo2.AsSafeValue(key), nil
	}

	return jsString(in, param)
}

// jsString is a pongo2 filter rendering its input as a double quoted string.
func jsString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	quoted, err := json.Marshal(in.String())
	if err != nil {
		return &pongo2.Value{}, &pongo2.Error{Sender: "filter:jsstring", OrigError: err}
	}

	return pongo2.AsSafeValue(string(quoted)), nil
}
