// SPDX-License-Identifier: MIT

package halfedge

import "fmt"

const methodValidate = "Validate"

// Validate checks every link of the mesh and returns the first violation,
// wrapped around ErrInconsistent. It never mutates the mesh.
//
// Half-edge h:
//   - Twin(h) is alive, Twin(Twin(h)) == h, Tail(h) == Tip(Twin(h)), Tip(h) == Tail(Twin(h)).
//   - Tail(h) != Tip(h), both endpoints alive.
//   - HalfEdgeEdge(h) is alive, shared with the twin, and represented by h or its twin.
//   - with a face: Next³(h) == h, the cycle shares the face, the face is alive.
//   - with a set Next: Tail(Next(h)) == Tip(h).
//
// Vertex v: its anchor, when set, is alive and leaves v.
// Edge e: its representative is alive and points back to e.
// Face f: its representative is alive and owned by f.
//
// Complexity: O(V+H+E+F).
func (m *Mesh) Validate() error {
	for _, h := range m.HalfEdges() {
		if err := m.validateHalfEdge(h); err != nil {
			return err
		}
	}
	for _, v := range m.Vertices() {
		a := m.VertexHalfEdge(v)
		if a == InvalidHalfEdge {
			continue
		}
		if !m.HasHalfEdge(a) || m.Tail(a) != v {
			return inconsistent("vertex %d: anchor %d does not leave it", v, a)
		}
	}
	for _, e := range m.Edges() {
		h := m.EdgeHalfEdge(e)
		if !m.HasHalfEdge(h) || m.HalfEdgeEdge(h) != e {
			return inconsistent("edge %d: representative %d does not point back", e, h)
		}
	}
	for _, f := range m.Faces() {
		h := m.FaceHalfEdge(f)
		if !m.HasHalfEdge(h) || m.Face(h) != f {
			return inconsistent("face %d: representative %d not owned", f, h)
		}
	}

	return nil
}

func (m *Mesh) validateHalfEdge(h HalfEdgeID) error {
	t := m.Twin(h)
	if !m.HasHalfEdge(t) || m.Twin(t) != h {
		return inconsistent("half-edge %d: twin %d not mutual", h, t)
	}
	tail, tip := m.Tail(h), m.Tip(h)
	if !m.HasVertex(tail) || !m.HasVertex(tip) || tail == tip {
		return inconsistent("half-edge %d: bad endpoints %d→%d", h, tail, tip)
	}
	if tail != m.Tip(t) || tip != m.Tail(t) {
		return inconsistent("half-edge %d: endpoints not mirrored by twin %d", h, t)
	}

	e := m.HalfEdgeEdge(h)
	if !m.HasEdge(e) || m.HalfEdgeEdge(t) != e {
		return inconsistent("half-edge %d: edge %d not shared with twin", h, e)
	}
	if rep := m.EdgeHalfEdge(e); rep != h && rep != t {
		return inconsistent("half-edge %d: edge %d represented by foreign %d", h, e, rep)
	}

	if n := m.Next(h); n != InvalidHalfEdge {
		if !m.HasHalfEdge(n) || m.Tail(n) != tip {
			return inconsistent("half-edge %d: next %d does not continue at %d", h, n, tip)
		}
	}

	f := m.Face(h)
	if f == NoFace {
		return nil
	}
	if !m.HasFace(f) {
		return inconsistent("half-edge %d: dead face %d", h, f)
	}
	if !m.isTriangle(h) {
		return inconsistent("half-edge %d: face %d is not a three-cycle", h, f)
	}

	return nil
}

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", methodValidate, fmt.Sprintf(format, args...), ErrInconsistent)
}
