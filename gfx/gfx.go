// Package gfx holds thin owners of single Direct3D 12 objects: descriptor
// heaps, upload buffers, committed buffers, shaders, the root signature and
// the pipeline state.
package gfx

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

func heapProperties(t d3d.HeapType) d3d.HeapProperties {
	return d3d.HeapProperties{
		Type:             t,
		CPUPageProperty:  d3d.CPUPagePropertyUnknown,
		CreationNodeMask: 1,
		VisibleNodeMask:  1,
	}
}

func bufferDesc(size uint64) d3d.ResourceDesc {
	return d3d.ResourceDesc{
		Dimension:        d3d.ResourceDimensionBuffer,
		Width:            size,
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           d3d.FormatUnknown,
		SampleDesc:       d3d.SampleDesc{Count: 1},
		Layout:           d3d.TextureLayoutRowMajor,
	}
}

// AlignUp rounds n up to a multiple of align, which must be a power of two.
func AlignUp(n, align uint64) uint64 {
	return (n + align - 1) &^ (align - 1)
}

// Bytes serializes fixed-size data in the little-endian layout the GPU reads.
func Bytes(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		return nil, errors.Wrap(err, "gfx: serializing data")
	}
	return buf.Bytes(), nil
}

// PutFloat32s writes v into dst as little-endian float32 values.
func PutFloat32s(dst []byte, v []float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

// Float32s reads n little-endian float32 values from src.
func Float32s(src []byte, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
	return out
}
