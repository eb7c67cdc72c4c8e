package terrain

// computeExtents scans vertex heights for minZ and maxZ.
func (t *Terrain) computeExtents() {
	minZ, maxZ := t.vertices[0].Z, t.vertices[0].Z
	for _, v := range t.vertices[1:] {
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}
	t.minZ, t.maxZ = minZ, maxZ
}
