package gfx

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

// CommittedResource is a buffer on its own upload heap, filled with a
// blocking map/copy/unmap.
type CommittedResource struct {
	Resource d3d.Resource
	Size     uint64
}

func NewCommittedResource(device d3d.Device, size uint64, data []byte) (*CommittedResource, error) {
	props := heapProperties(d3d.HeapTypeUpload)
	desc := bufferDesc(size)

	res, err := device.CreateCommittedResource(&props, d3d.HeapFlagNone, &desc, d3d.ResourceStateGenericRead)
	if err != nil {
		return nil, errors.Wrapf(err, "gfx: creating %d byte committed resource", size)
	}

	r := &CommittedResource{Resource: res, Size: size}
	if data != nil {
		if err := r.UploadData(data); err != nil {
			res.Release()
			return nil, err
		}
	}
	return r, nil
}

func (r *CommittedResource) UploadData(data []byte) error {
	if uint64(len(data)) > r.Size {
		return errors.Newf("gfx: %d bytes do not fit a %d byte resource", len(data), r.Size)
	}

	ptr, err := r.Resource.Map(0, &d3d.Range{})
	if err != nil {
		return errors.Wrap(err, "gfx: mapping committed resource")
	}
	copy(unsafe.Slice((*byte)(ptr), r.Size), data)
	r.Resource.Unmap(0, nil)
	return nil
}

func (r *CommittedResource) Release() {
	if r == nil || r.Resource == nil {
		return
	}
	r.Resource.Release()
	r.Resource = nil
}

type VertexBuffer struct {
	CommittedResource
	Stride uint32
	View   d3d.VertexBufferView
}

func NewVertexBuffer(device d3d.Device, sizeInBytes, strideInBytes uint32, data []byte) (*VertexBuffer, error) {
	r, err := NewCommittedResource(device, uint64(sizeInBytes), data)
	if err != nil {
		return nil, errors.Wrap(err, "gfx: creating vertex buffer")
	}

	return &VertexBuffer{
		CommittedResource: *r,
		Stride:            strideInBytes,
		View: d3d.VertexBufferView{
			BufferLocation: r.Resource.GPUVirtualAddress(),
			SizeInBytes:    sizeInBytes,
			StrideInBytes:  strideInBytes,
		},
	}, nil
}

func (v *VertexBuffer) Release() {
	if v == nil {
		return
	}
	v.CommittedResource.Release()
}
