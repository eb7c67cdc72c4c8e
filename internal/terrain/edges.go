package terrain

// buildEdges emits (v0,v1), (v1,v2), (v2,v0) for every face in face order.
// Edges shared by two triangles appear twice.
func (t *Terrain) buildEdges() {
	t.edges = t.edges[:0]
	for f := 0; f+2 < len(t.faces); f += 3 {
		v0, v1, v2 := t.faces[f], t.faces[f+1], t.faces[f+2]
		t.edges = append(t.edges,
			v0, v1,
			v1, v2,
			v2, v0,
		)
	}
}
