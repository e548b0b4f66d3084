package ast

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/fastpath/token"
)

// Keys of an ESTree object that are not copied into node fields.
var skippedKeys = map[string]bool{
	"type":             true,
	"loc":              true,
	"extra":            true,
	"range":            true,
	"start":            true,
	"end":              true,
	"tokens":           true,
	"comments":         true,
	"leadingComments":  true,
	"trailingComments": true,
	"innerComments":    true,
}

// LoadFile reads and decodes the ESTree document at path. See Load.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Load decodes an ESTree document serialized as JSON or YAML. If the root
// object carries a "tokens" array, the token sequence is attached to the
// location of every node together with the half-open range of token
// indices the node covers.
func Load(data []byte) (*Node, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	d := &decoder{}
	obj, ok := asObject(raw)
	if !ok {
		return nil, fmt.Errorf("decode: root is %T, not an object", raw)
	}
	if rawTokens, ok := obj.get("tokens"); ok {
		d.tokens = d.decodeTokens(rawTokens)
	}
	root, _ := d.value(raw, "$").(*Node)
	if root == nil {
		d.errs = multierror.Append(d.errs, fmt.Errorf("$: root object has no type"))
	}
	if err := d.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if d.tokens != nil {
		AttachTokens(root, d.tokens)
	}
	return root, nil
}

// AttachTokens records tokens on the location of every node under root and
// computes each node's token range. Tokens must be in source order.
func AttachTokens(root *Node, tokens []*token.Token) {
	Inspect(root, func(n *Node) bool {
		if n.Loc == nil {
			return true
		}
		n.Loc.Tokens = tokens
		n.Loc.StartToken = sort.Search(len(tokens), func(i int) bool {
			return token.Compare(tokens[i].Loc.Start, n.Loc.Start) >= 0
		})
		n.Loc.EndToken = sort.Search(len(tokens), func(i int) bool {
			return token.Compare(tokens[i].Loc.End, n.Loc.End) > 0
		})
		if n.Loc.EndToken < n.Loc.StartToken {
			n.Loc.EndToken = n.Loc.StartToken
		}
		return true
	})
}

type decoder struct {
	tokens []*token.Token
	errs   *multierror.Error
}

func (d *decoder) errorf(format string, args ...any) {
	d.errs = multierror.Append(d.errs, fmt.Errorf(format, args...))
}

// object is an ordered view over a decoded mapping.
type object struct {
	keys   []string
	values map[string]any
}

func (o *object) get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func asObject(v any) (*object, bool) {
	switch m := v.(type) {
	case yaml.MapSlice:
		o := &object{values: make(map[string]any, len(m))}
		for _, item := range m {
			key := fmt.Sprint(item.Key)
			if _, dup := o.values[key]; !dup {
				o.keys = append(o.keys, key)
			}
			o.values[key] = item.Value
		}
		return o, true
	case map[string]any:
		o := &object{values: m}
		for k := range m {
			o.keys = append(o.keys, k)
		}
		sort.Strings(o.keys)
		return o, true
	}
	return nil, false
}

func (d *decoder) value(v any, path string) any {
	if obj, ok := asObject(v); ok {
		typ, _ := obj.values["type"].(string)
		if typ == "" {
			return d.plain(v)
		}
		return d.node(obj, typ, path)
	}
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = d.value(elem, fmt.Sprintf("%s[%d]", path, i))
		}
		return out
	default:
		return scalar(v)
	}
}

func (d *decoder) node(obj *object, typ, path string) *Node {
	n := New(typ)
	path = path + "(" + typ + ")"
	for _, key := range obj.keys {
		if skippedKeys[key] {
			continue
		}
		n.Set(key, d.value(obj.values[key], path+"."+key))
	}
	if rawExtra, ok := obj.get("extra"); ok && rawExtra != nil {
		extra, ok := d.plain(rawExtra).(map[string]any)
		if !ok {
			d.errorf("%s.extra: expected object, got %T", path, rawExtra)
		} else {
			n.Extra = extra
		}
	}
	if rawLoc, ok := obj.get("loc"); ok && rawLoc != nil {
		n.Loc = d.location(rawLoc, path+".loc")
	}
	return n
}

func (d *decoder) location(v any, path string) *Location {
	obj, ok := asObject(v)
	if !ok {
		d.errorf("%s: expected object, got %T", path, v)
		return nil
	}
	start, _ := obj.get("start")
	end, _ := obj.get("end")
	return &Location{
		Start: d.position(start, path+".start"),
		End:   d.position(end, path+".end"),
	}
}

func (d *decoder) position(v any, path string) token.Position {
	obj, ok := asObject(v)
	if !ok {
		d.errorf("%s: expected object, got %T", path, v)
		return token.NoPos
	}
	var pos token.Position
	for key, dst := range map[string]*int{"line": &pos.Line, "column": &pos.Column, "index": &pos.Offset} {
		raw, ok := obj.get(key)
		if !ok {
			continue
		}
		i, ok := toInt(raw)
		if !ok {
			d.errorf("%s.%s: expected integer, got %T", path, key, raw)
			continue
		}
		*dst = i
	}
	return pos
}

func (d *decoder) decodeTokens(v any) []*token.Token {
	list, ok := v.([]any)
	if !ok {
		d.errorf("$.tokens: expected array, got %T", v)
		return nil
	}
	tokens := make([]*token.Token, 0, len(list))
	for i, raw := range list {
		path := fmt.Sprintf("$.tokens[%d]", i)
		obj, ok := asObject(raw)
		if !ok {
			d.errorf("%s: expected object, got %T", path, raw)
			continue
		}
		tok := &token.Token{}
		var label string
		switch typ := d.plain(obj.values["type"]).(type) {
		case string:
			tok.Type = token.Type(typ)
		case map[string]any:
			// Babel token types are objects carrying a label.
			label, _ = typ["label"].(string)
			tok.Type = token.Type(label)
		}
		switch value := scalar(obj.values["value"]); {
		case value != nil:
			tok.Value = fmt.Sprint(value)
		case label != "":
			// Babel punctuators carry their text only in the label.
			tok.Value = label
		}
		if rawLoc, ok := obj.get("loc"); ok {
			if loc := d.location(rawLoc, path+".loc"); loc != nil {
				tok.Loc = loc.Span()
			}
		} else {
			d.errorf("%s: missing loc", path)
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// plain converts decoded YAML data into maps, slices and scalars without
// interpreting node structure.
func (d *decoder) plain(v any) any {
	if obj, ok := asObject(v); ok {
		out := make(map[string]any, len(obj.keys))
		for _, k := range obj.keys {
			out[k] = d.plain(obj.values[k])
		}
		return out
	}
	if list, ok := v.([]any); ok {
		out := make([]any, len(list))
		for i, elem := range list {
			out[i] = d.plain(elem)
		}
		return out
	}
	return scalar(v)
}

// scalar normalizes decoded numbers to float64, matching the number model of
// the source language.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	}
	return v
}

func toInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}
