/*
File    : mlang/objects/collection.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is an unordered string-keyed mapping. Members is
// shared-immutable: member assignment (`coll.name = expr`) never writes
// into this map in place, it builds a fresh one and the evaluator swaps
// it into the binding atomically (copy-on-write), so an alias of the
// original Collection never observes a half-updated member set.
type Collection struct {
	Members map[string]Value
}

func (c *Collection) Kind() Kind { return CollectionKind }

// With returns a new Collection with name bound to value, leaving c
// untouched. Used by the evaluator's copy-on-write member assignment.
func (c *Collection) With(name string, value Value) *Collection {
	members := make(map[string]Value, len(c.Members)+1)
	for k, v := range c.Members {
		members[k] = v
	}
	members[name] = value
	return &Collection{Members: members}
}

func (c *Collection) Table() VTable {
	return VTable{
		// Union: every member of both sides, right side wins on a
		// duplicate key.
		"uni_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Collection)
			if !ok {
				return nil, typeMismatch("|", c, arg)
			}
			members := make(map[string]Value, len(c.Members)+len(rhs.Members))
			for k, v := range c.Members {
				members[k] = v
			}
			for k, v := range rhs.Members {
				members[k] = v
			}
			return &Collection{Members: members}, nil
		},
		// Intersection: only keys present on both sides, left side's
		// value retained.
		"ins_lhs": func(arg Value) (Value, error) {
			rhs, ok := arg.(*Collection)
			if !ok {
				return nil, typeMismatch("&", c, arg)
			}
			members := make(map[string]Value)
			for k, v := range c.Members {
				if _, ok := rhs.Members[k]; ok {
					members[k] = v
				}
			}
			return &Collection{Members: members}, nil
		},
		// Always absent, just like Vector: a Collection is never itself
		// a truthy condition.
		"truthy": func(arg Value) (Value, error) {
			return nil, nil
		},
		"str": func(arg Value) (Value, error) {
			names := make([]string, 0, len(c.Members))
			for name := range c.Members {
				names = append(names, name)
			}
			sort.Strings(names)

			parts := make([]string, len(names))
			for i, name := range names {
				s, err := Str(c.Members[name])
				if err != nil {
					return nil, err
				}
				parts[i] = fmt.Sprintf(".%s = %s", name, s)
			}
			return &Str{Value: fmt.Sprintf("{ %s }", strings.Join(parts, ", "))}, nil
		},
	}
}
