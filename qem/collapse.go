// SPDX-License-Identifier: MIT

package qem

import (
	"fmt"

	"github.com/katalvlaran/qemesh/halfedge"
)

// collapseEdge merges the tail of e's representative half-edge into its tip
// and returns the surviving vertex. The two flanking triangles, the six
// half-edges bounding them, e itself and the two edges on the removed side
// are destroyed. Geometry is left untouched; placing the survivor is the
// caller's job.
//
// Local picture, h = representative of e, vr = tail(h), vk = tip(h):
//
//	        vL
//	       /  \
//	 hLp  / fL \ hLn
//	     /  h   \
//	   vr ─────→ vk
//	     \  ht  /
//	 hRn  \ fR / hRp
//	       \  /
//	        vR
//
// Errors:
//   - ErrEdgeNotFound   if e is dead.
//   - ErrNotCollapsable if the collapse would break manifoldness; nothing is mutated.
func (s *Simplifier) collapseEdge(e halfedge.EdgeID) (halfedge.VertexID, error) {
	m := s.mesh
	if !m.HasEdge(e) {
		return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, ErrEdgeNotFound)
	}
	if !m.IsCollapsable(e) {
		return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, ErrNotCollapsable)
	}

	h := m.EdgeHalfEdge(e)
	ht := m.Twin(h)
	hLn := m.Next(h)
	hLp := m.Next(hLn)
	hRn := m.Next(ht)
	hRp := m.Next(hRn)

	eDelL := m.HalfEdgeEdge(hLp)
	eDelR := m.HalfEdgeEdge(hRn)
	eKeepL := m.HalfEdgeEdge(hLn)
	eKeepR := m.HalfEdgeEdge(hRp)

	vKeep := m.Tip(h)
	vRemove := m.Tail(h)
	vL := m.Tip(hLn)
	vR := m.Tail(hRp)
	fL := m.Face(h)
	fR := m.Face(ht)

	// Outer neighbours of the four surviving sides.
	oLn, oLp := m.Twin(hLn), m.Twin(hLp)
	oRn, oRp := m.Twin(hRn), m.Twin(hRp)

	// 1. Re-point the fan of vRemove at vKeep.
	for _, out := range m.OutgoingHalfEdges(vRemove) {
		m.SetTail(out, vKeep)
		m.SetTip(m.Twin(out), vKeep)
	}

	// 2. Anchors that may point into the doomed triangles.
	m.SetVertexHalfEdge(vKeep, oRp)
	m.SetVertexHalfEdge(vL, oLn)
	m.SetVertexHalfEdge(vR, oRn)

	// 3. Zip the outer half-edges across each removed triangle.
	m.SetTwin(oLn, oLp)
	m.SetTwin(oLp, oLn)
	m.SetTwin(oRn, oRp)
	m.SetTwin(oRp, oRn)
	m.SetHalfEdgeEdge(oLn, eKeepL)
	m.SetHalfEdgeEdge(oLp, eKeepL)
	m.SetHalfEdgeEdge(oRn, eKeepR)
	m.SetHalfEdgeEdge(oRp, eKeepR)
	m.SetEdgeHalfEdge(eKeepL, oLn)
	m.SetEdgeHalfEdge(eKeepR, oRp)

	// 4. Destroy.
	delete(s.quadrics, vRemove)
	for _, f := range [...]halfedge.FaceID{fL, fR} {
		if err := m.RemoveFace(f); err != nil {
			return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, err)
		}
	}
	for _, x := range [...]halfedge.HalfEdgeID{h, ht, hLn, hLp, hRn, hRp} {
		if err := m.RemoveHalfEdge(x); err != nil {
			return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, err)
		}
	}
	for _, x := range [...]halfedge.EdgeID{e, eDelL, eDelR} {
		if err := s.destroyEdge(x); err != nil {
			return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, err)
		}
	}
	if err := m.RemoveVertex(vRemove); err != nil {
		return halfedge.InvalidVertex, fmt.Errorf("%s(%d): %w", methodCollapseEdge, e, err)
	}

	return vKeep, nil
}
