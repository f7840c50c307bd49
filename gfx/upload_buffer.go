package gfx

import (
	"io"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

// UploadBuffer is a CPU-writable GPU buffer that stays mapped for its whole
// life. Callers write through Bytes or through the cursor (Write, Align,
// Offset). Nothing here synchronizes with the GPU.
type UploadBuffer struct {
	Resource d3d.Resource

	data []byte
	cur  int
}

func NewUploadBuffer(device d3d.Device, size uint64, heapType d3d.HeapType, heapFlags d3d.HeapFlags) (*UploadBuffer, error) {
	props := heapProperties(heapType)
	desc := bufferDesc(size)

	res, err := device.CreateCommittedResource(&props, heapFlags, &desc, d3d.ResourceStateGenericRead)
	if err != nil {
		return nil, errors.Wrapf(err, "gfx: creating %d byte upload buffer", size)
	}

	// An empty read range: the CPU never reads this memory back.
	ptr, err := res.Map(0, &d3d.Range{})
	if err != nil {
		res.Release()
		return nil, errors.Wrap(err, "gfx: mapping upload buffer")
	}

	return &UploadBuffer{
		Resource: res,
		data:     unsafe.Slice((*byte)(ptr), size),
	}, nil
}

// Bytes is the whole mapped region, begin to end.
func (b *UploadBuffer) Bytes() []byte {
	return b.data
}

func (b *UploadBuffer) Len() int {
	return len(b.data)
}

// Offset is the cursor position relative to the start of the mapping.
func (b *UploadBuffer) Offset() int {
	return b.cur
}

// Remaining is the mapped region from the cursor to the end.
func (b *UploadBuffer) Remaining() []byte {
	return b.data[b.cur:]
}

// Write copies p at the cursor and advances it. It fails without writing
// when p does not fit.
func (b *UploadBuffer) Write(p []byte) (int, error) {
	if len(p) > len(b.data)-b.cur {
		return 0, errors.Wrapf(io.ErrShortBuffer, "gfx: writing %d bytes at offset %d of %d", len(p), b.cur, len(b.data))
	}
	n := copy(b.data[b.cur:], p)
	b.cur += n
	return n, nil
}

// Align moves the cursor up to the next multiple of align.
func (b *UploadBuffer) Align(align uint64) error {
	next := int(AlignUp(uint64(b.cur), align))
	if next > len(b.data) {
		return errors.Wrapf(io.ErrShortBuffer, "gfx: aligning offset %d to %d past end %d", b.cur, align, len(b.data))
	}
	b.cur = next
	return nil
}

// Reset rewinds the cursor to the start of the mapping.
func (b *UploadBuffer) Reset() {
	b.cur = 0
}

func (b *UploadBuffer) GPUVirtualAddress() d3d.GPUVirtualAddress {
	return b.Resource.GPUVirtualAddress()
}

func (b *UploadBuffer) Release() {
	if b == nil || b.Resource == nil {
		return
	}
	b.Resource.Unmap(0, nil)
	b.Resource.Release()
	b.Resource = nil
	b.data = nil
}
