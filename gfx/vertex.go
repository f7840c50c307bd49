package gfx

import "github.com/gpusamples/d3d12hello/d3d"

// VertexP3FT2F is a position plus one texture coordinate, 20 bytes packed.
type VertexP3FT2F struct {
	Pos [3]float32
	Tex [2]float32
}

const VertexP3FT2FSize = 20

func P3FT2FInputLayout() []d3d.InputElementDesc {
	return []d3d.InputElementDesc{
		{
			SemanticName:      "POSITION",
			Format:            d3d.FormatR32G32B32Float,
			AlignedByteOffset: 0,
			InputSlotClass:    d3d.InputClassificationPerVertexData,
		},
		{
			SemanticName:      "TEXCOORD",
			Format:            d3d.FormatR32G32Float,
			AlignedByteOffset: 12,
			InputSlotClass:    d3d.InputClassificationPerVertexData,
		},
	}
}
