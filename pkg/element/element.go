// Package element models UI nodes reported by the on-device agent and
// computes stable locators for re-identifying them.
package element

import (
	"encoding/json"
	"strings"
)

// Element is a snapshot of one node in the device UI tree at query time.
// It is immutable once decoded and carries no live reference to the device;
// a stale Element may no longer resolve on-device.
type Element struct {
	ResourceID   string `json:"resourceId"`
	Text         string `json:"text"`
	ContentDesc  string `json:"contentDesc"`
	ClassName    string `json:"className"`
	Bounds       string `json:"bounds"` // device-reported, passed through verbatim
	Depth        int    `json:"depth"`
	IsClickable  bool   `json:"isClickable"`
	IsScrollable bool   `json:"isScrollable"`
	IsFocusable  bool   `json:"isFocusable"`
	IsEditable   bool   `json:"isEditable"`
	PackageName  string `json:"packageName"`
	ViewID       string `json:"viewId"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
}

// Decode parses an agent snapshot response (a JSON array of element objects).
// Absent fields decode to zero values.
func Decode(data []byte) ([]Element, error) {
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// present reports whether an identifying attribute is usable. The agent
// serializes absent values as the literal string "null", so both empty
// and "null" count as absent.
func present(s string) bool {
	return s != "" && s != "null"
}

// HasResourceID reports whether the element has a usable resource identifier.
func (e Element) HasResourceID() bool { return present(e.ResourceID) }

// HasText reports whether the element has usable visible text.
func (e Element) HasText() bool { return present(e.Text) }

// HasContentDesc reports whether the element has a usable content description.
func (e Element) HasContentDesc() bool { return present(e.ContentDesc) }

// HasClassName reports whether the element has a usable class name.
func (e Element) HasClassName() bool { return present(e.ClassName) }

// ShortClass returns the class name without its package prefix.
func (e Element) ShortClass() string {
	if !e.HasClassName() {
		return ""
	}
	if idx := strings.LastIndex(e.ClassName, "."); idx >= 0 {
		return e.ClassName[idx+1:]
	}
	return e.ClassName
}

// ShortID returns the resource ID without its package/id prefix.
func (e Element) ShortID() string {
	if !e.HasResourceID() {
		return ""
	}
	if idx := strings.LastIndex(e.ResourceID, "/"); idx >= 0 {
		return e.ResourceID[idx+1:]
	}
	return e.ResourceID
}

// Label returns a short human-readable description for tree display:
// the short class name plus truncated text or resource ID when available.
func (e Element) Label() string {
	name := e.ShortClass()
	if name == "" {
		name = "Element"
	}
	if e.HasText() {
		return name + ": " + truncate(e.Text, 20)
	}
	if e.HasResourceID() {
		return name + ": " + e.ShortID()
	}
	return name
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
