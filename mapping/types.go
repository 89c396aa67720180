package mapping

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNilEnumerator is returned when a required Enumerator is nil.
var ErrNilEnumerator = errors.New("mapping: enumerator is nil")

// Mapping relabels pattern nodes into target-graph node IDs.
// ok is false when node lies outside the mapping's domain.
type Mapping interface {
	Map(node string) (image string, ok bool)
}

// Func adapts a plain function to Mapping.
type Func func(node string) (string, bool)

// Map calls f(node).
func (f Func) Map(node string) (string, bool) { return f(node) }

// Total adapts a total function (defined on every node) to Mapping.
// An empty image is treated as undefined.
func Total(f func(node string) string) Mapping {
	return Func(func(node string) (string, bool) {
		image := f(node)
		return image, image != ""
	})
}

// Table is a materialized mapping. Keys absent from the table, or mapped to "",
// are outside its domain.
type Table map[string]string

// Map looks node up in t.
func (t Table) Map(node string) (string, bool) {
	image, ok := t[node]
	return image, ok && image != ""
}

// Keys returns the table's domain in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

type emptyMapping struct{}

func (emptyMapping) Map(string) (string, bool) { return "", false }

// Empty is the mapping with an empty domain. Selection returns it when no
// candidate preserved any edge.
var Empty Mapping = emptyMapping{}

// IsEmpty reports whether m is nil or Empty.
func IsEmpty(m Mapping) bool {
	if m == nil {
		return true
	}
	_, ok := m.(emptyMapping)

	return ok
}

// DomainError reports a node that a mapping could not relabel.
type DomainError struct {
	// Node is the offending pattern node.
	Node string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("mapping: node %q is outside the mapping domain", e.Node)
}

// Apply maps node through m, returning *DomainError when it is undefined.
func Apply(m Mapping, node string) (string, error) {
	if m != nil {
		if image, ok := m.Map(node); ok {
			return image, nil
		}
	}

	return "", &DomainError{Node: node}
}

// Materialize evaluates m on every node and returns the result as a Table.
// The first undefined node aborts with *DomainError.
func Materialize(m Mapping, nodes []string) (Table, error) {
	out := make(Table, len(nodes))
	for _, n := range nodes {
		image, err := Apply(m, n)
		if err != nil {
			return nil, err
		}
		out[n] = image
	}

	return out, nil
}
