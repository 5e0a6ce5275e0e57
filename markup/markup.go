// Package markup holds the element tree drawables are inflated from, and
// decoders for its XML and JSON forms.
//
// The XML form is the familiar resource syntax:
//
//	<shape xmlns:android="http://schemas.android.com/apk/res/android"
//	    android:color="#ff336699" android:width="24dp" android:height="24dp">
//	  <padding android:left="4dp" android:top="4dp"/>
//	</shape>
//
// Namespace prefixes are stripped; attributes are looked up by local name.
// The JSON form carries the same tree:
//
//	{"name": "shape", "attrs": {"color": "#ff336699"},
//	 "children": [{"name": "padding", "attrs": {"left": "4dp"}}]}
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
)

// Attr is a single element attribute.
type Attr struct {
	// Space is the namespace URL the attribute was declared in, if any.
	Space string
	Name  string
	Value string
}

// Element is a markup element with its attributes and child elements.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ErrEmpty is returned when the input holds no element.
var ErrEmpty = errors.New("markup: no root element")

// Decode reads one XML document and returns its root element. Character
// data, comments and processing instructions are ignored.
func Decode(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	var stack []*Element
	var root *Element
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("markup: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Space: a.Name.Space, Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("markup: multiple root elements (%s, %s)", root.Name, el.Name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, ErrEmpty
	}
	return root, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string) (*Element, error) {
	return Decode(strings.NewReader(s))
}

type jsonElement struct {
	Name     string            `json:"name"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []jsonElement     `json:"children,omitempty"`
}

// DecodeJSON parses the JSON form of an element tree. Attributes are
// ordered by name since JSON objects are unordered.
func DecodeJSON(data []byte) (*Element, error) {
	var je jsonElement
	if err := json.Unmarshal(data, &je); err != nil {
		return nil, fmt.Errorf("markup: %w", err)
	}
	if je.Name == "" {
		return nil, ErrEmpty
	}
	return je.element()
}

func (je *jsonElement) element() (*Element, error) {
	if je.Name == "" {
		return nil, errors.New("markup: element without name")
	}
	el := &Element{Name: je.Name}
	names := make([]string, 0, len(je.Attrs))
	for name := range je.Attrs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		local := name
		if i := strings.IndexByte(name, ':'); i >= 0 {
			local = name[i+1:]
		}
		el.Attrs = append(el.Attrs, Attr{Name: local, Value: je.Attrs[name]})
	}
	for i := range je.Children {
		c, err := je.Children[i].element()
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, c)
	}
	return el, nil
}
