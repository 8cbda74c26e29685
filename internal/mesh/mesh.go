// Package mesh turns solids into printable triangle meshes and STL
// files, and summarizes the result for the run catalog.
package mesh

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"
)

// Stats describes one generated mesh.
type Stats struct {
	Triangles int     `json:"triangles"`
	Volume    float64 `json:"volume_mm3"`
	SizeX     float64 `json:"size_x_mm"`
	SizeY     float64 `json:"size_y_mm"`
	SizeZ     float64 `json:"size_z_mm"`
}

// Generate triangulates a solid with marching cubes at the given cell
// size. Smaller cells track thread ridges and snap tapers more closely
// at the cost of runtime and file size.
func Generate(s model3d.Solid, resolution float64) (*model3d.Mesh, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("mesh resolution must be positive, got %g", resolution)
	}
	return model3d.MarchingCubesSearch(s, resolution, 8), nil
}

// Summarize measures a generated mesh.
func Summarize(m *model3d.Mesh) Stats {
	min, max := m.Min(), m.Max()
	return Stats{
		Triangles: len(m.TriangleSlice()),
		Volume:    m.Volume(),
		SizeX:     max.X - min.X,
		SizeY:     max.Y - min.Y,
		SizeZ:     max.Z - min.Z,
	}
}

// ExportSTL writes the mesh to path as binary STL.
func ExportSTL(path string, m *model3d.Mesh) error {
	if err := m.SaveGroupedSTL(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
