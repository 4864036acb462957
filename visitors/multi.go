package visitors

import (
	"github.com/katalvlaran/parbfs/bfs"
	"github.com/katalvlaran/parbfs/core"
)

// multi forwards each hook to every visitor in order and stops at the first error.
type multi []bfs.Visitor

// Multi combines several visitors into one. Nil entries are skipped.
func Multi(vs ...bfs.Visitor) bfs.Visitor {
	m := make(multi, 0, len(vs))
	for _, v := range vs {
		if v != nil {
			m = append(m, v)
		}
	}
	return m
}

func (m multi) each(fn func(bfs.Visitor) error) error {
	for _, v := range m {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

func (m multi) InitializeVertex(v int) error {
	return m.each(func(x bfs.Visitor) error { return x.InitializeVertex(v) })
}

func (m multi) DiscoverVertex(v int) error {
	return m.each(func(x bfs.Visitor) error { return x.DiscoverVertex(v) })
}

func (m multi) ExamineVertex(v int) error {
	return m.each(func(x bfs.Visitor) error { return x.ExamineVertex(v) })
}

func (m multi) ExamineEdge(e core.Edge) error {
	return m.each(func(x bfs.Visitor) error { return x.ExamineEdge(e) })
}

func (m multi) TreeEdge(e core.Edge) error {
	return m.each(func(x bfs.Visitor) error { return x.TreeEdge(e) })
}

func (m multi) NonTreeEdge(e core.Edge) error {
	return m.each(func(x bfs.Visitor) error { return x.NonTreeEdge(e) })
}

func (m multi) GrayTarget(e core.Edge) error {
	return m.each(func(x bfs.Visitor) error { return x.GrayTarget(e) })
}

func (m multi) BlackTarget(e core.Edge) error {
	return m.each(func(x bfs.Visitor) error { return x.BlackTarget(e) })
}

func (m multi) FinishVertex(v int) error {
	return m.each(func(x bfs.Visitor) error { return x.FinishVertex(v) })
}
