package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// LoadGLTF loads a glTF or GLB file and reduces its triangle geometry to
// an edge-list mesh. Used for station and probe models supplied as
// custom high-detail levels.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, gm := range doc.Meshes {
		if err := appendPrimitives(doc, gm, mesh); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", gm.Name, err)
		}
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// appendPrimitives extracts each triangle primitive's positions and
// turns its faces into unique edges.
func appendPrimitives(doc *gltf.Document, gm *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Positions)
		for _, p := range positions {
			mesh.AddPosition(p)
		}

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				addTriangleEdges(mesh, base+indices[i], base+indices[i+1], base+indices[i+2])
			}
		} else {
			for i := 0; i+2 < len(positions); i += 3 {
				addTriangleEdges(mesh, base+i, base+i+1, base+i+2)
			}
		}
	}
	return nil
}

func addTriangleEdges(mesh *Mesh, a, b, c int) {
	mesh.AddEdge(a, b)
	mesh.AddEdge(b, c)
	mesh.AddEdge(c, a)
}

// readVec3Accessor reads Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]mgl64.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	bufData, start, stride, err := accessorView(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]mgl64.Vec3, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		for j := range 3 {
			result[i][j] = float64(readFloat32(bufData[offset+j*4:]))
		}
	}
	return result, nil
}

// readIndices reads scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	bufData, start, stride, err := accessorView(doc, accessor, width)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		switch width {
		case 1:
			result[i] = int(bufData[offset])
		case 2:
			result[i] = int(uint16(bufData[offset]) | uint16(bufData[offset+1])<<8)
		case 4:
			result[i] = int(uint32(bufData[offset]) |
				uint32(bufData[offset+1])<<8 |
				uint32(bufData[offset+2])<<16 |
				uint32(bufData[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorView resolves an accessor to its backing bytes, start offset
// and element stride. Only embedded (GLB) buffers are supported.
func accessorView(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		return nil, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	return buffer.Data, bufferView.ByteOffset + accessor.ByteOffset, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
