// File: walk.go
// Title: Value Tree Traversal
// Description: Depth-first traversal of Value trees. Visitor receives
//              enter/leave callbacks for containers; Walk is the
//              function-based shortcut. Both report the path of every node.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package value

import (
	"errors"
	"strconv"
	"strings"
)

// SkipChildren can be returned from EnterList, EnterMap or a WalkFunc to
// skip the children of the current container.
var SkipChildren = errors.New("skip children")

// PathElem is one step from a container to a child. Index is -1 for map keys.
type PathElem struct {
	Key   string
	Index int
}

// Path locates a node relative to the root
type Path []PathElem

// String renders the path as $.key[0]["spaced key"]
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, e := range p {
		if e.Index >= 0 {
			sb.WriteString("[" + strconv.Itoa(e.Index) + "]")
			continue
		}
		if isPlainKey(e.Key) {
			sb.WriteString("." + e.Key)
		} else {
			sb.WriteString("[" + strconv.Quote(e.Key) + "]")
		}
	}
	return sb.String()
}

// Depth returns the number of steps from the root
func (p Path) Depth() int {
	return len(p)
}

func (p Path) child(e PathElem) Path {
	return append(p[:len(p):len(p)], e)
}

func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !(r == '_' || r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// Visitor receives callbacks during Accept
type Visitor interface {
	VisitScalar(path Path, v Value) error
	EnterList(path Path, v Value) error
	LeaveList(path Path, v Value) error
	EnterMap(path Path, v Value) error
	LeaveMap(path Path, v Value) error
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitScalar(Path, Value) error { return nil }
func (BaseVisitor) EnterList(Path, Value) error   { return nil }
func (BaseVisitor) LeaveList(Path, Value) error   { return nil }
func (BaseVisitor) EnterMap(Path, Value) error    { return nil }
func (BaseVisitor) LeaveMap(Path, Value) error    { return nil }

// Accept walks v depth-first, calling visitor for every node. Returning
// SkipChildren from an Enter callback skips that container's children
// (its Leave callback still runs); any other error stops the walk.
func Accept(v Value, visitor Visitor) error {
	return accept(nil, v, visitor)
}

func accept(path Path, v Value, visitor Visitor) error {
	switch v.kind {
	case KindList:
		err := visitor.EnterList(path, v)
		if err != nil && err != SkipChildren {
			return err
		}
		if err == nil {
			for i, item := range v.items {
				if err := accept(path.child(PathElem{Index: i}), item, visitor); err != nil {
					return err
				}
			}
		}
		return visitor.LeaveList(path, v)
	case KindMap:
		err := visitor.EnterMap(path, v)
		if err != nil && err != SkipChildren {
			return err
		}
		if err == nil {
			for _, e := range v.entries {
				if err := accept(path.child(PathElem{Key: e.Key, Index: -1}), e.Value, visitor); err != nil {
					return err
				}
			}
		}
		return visitor.LeaveMap(path, v)
	default:
		return visitor.VisitScalar(path, v)
	}
}

// WalkFunc is called for every node in pre-order
type WalkFunc func(path Path, v Value) error

// Walk calls fn for v and all its descendants in pre-order
func Walk(v Value, fn WalkFunc) error {
	return Accept(v, walkVisitor{fn: fn})
}

type walkVisitor struct {
	BaseVisitor
	fn WalkFunc
}

func (w walkVisitor) VisitScalar(path Path, v Value) error { return w.fn(path, v) }
func (w walkVisitor) EnterList(path Path, v Value) error   { return w.fn(path, v) }
func (w walkVisitor) EnterMap(path Path, v Value) error    { return w.fn(path, v) }

// Stats summarizes a value tree
type Stats struct {
	Nodes    int
	MaxDepth int
	ByKind   map[Kind]int
}

// Collect gathers Stats for v
func Collect(v Value) Stats {
	s := Stats{ByKind: make(map[Kind]int)}
	_ = Walk(v, func(path Path, node Value) error {
		s.Nodes++
		s.ByKind[node.Kind()]++
		if path.Depth() > s.MaxDepth {
			s.MaxDepth = path.Depth()
		}
		return nil
	})
	return s
}
