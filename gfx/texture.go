package gfx

import (
	"image"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

// Texture is a 2D RGBA8 texture in a default heap.
type Texture struct {
	Resource d3d.Resource
	Desc     d3d.ResourceDesc
}

func texture2DDesc(width, height uint32) d3d.ResourceDesc {
	return d3d.ResourceDesc{
		Dimension:        d3d.ResourceDimensionTexture2D,
		Width:            uint64(width),
		Height:           height,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           d3d.FormatR8G8B8A8UNorm,
		SampleDesc:       d3d.SampleDesc{Count: 1},
		Layout:           d3d.TextureLayoutUnknown,
	}
}

// NewTexture2D creates a texture for img, stages its rows in upload at the
// next placement-aligned offset and records the copy on list. The texture is
// left in the copy destination state; callers transition it before sampling.
func NewTexture2D(device d3d.Device, list d3d.GraphicsCommandList, upload *UploadBuffer, img *image.RGBA) (*Texture, error) {
	bounds := img.Bounds()
	width, height := uint32(bounds.Dx()), uint32(bounds.Dy())
	if width == 0 || height == 0 {
		return nil, errors.New("gfx: empty texture image")
	}

	desc := texture2DDesc(width, height)
	props := heapProperties(d3d.HeapTypeDefault)
	res, err := device.CreateCommittedResource(&props, d3d.HeapFlagNone, &desc, d3d.ResourceStateCopyDest)
	if err != nil {
		return nil, errors.Wrapf(err, "gfx: creating %dx%d texture", width, height)
	}

	if err := upload.Align(d3d.TextureDataPlacementAlignment); err != nil {
		res.Release()
		return nil, errors.Wrap(err, "gfx: staging texture")
	}
	footprints := device.CopyableFootprints(&desc, 0, 1, uint64(upload.Offset()))
	layout := footprints.Layouts[0]

	staged := footprints.TotalBytes
	if staged > uint64(len(upload.Remaining())) {
		res.Release()
		return nil, errors.Newf("gfx: texture needs %d staging bytes, %d left", staged, len(upload.Remaining()))
	}
	stageRows(upload.Remaining(), img, layout.Footprint.RowPitch)
	upload.cur += int(staged)

	dst := d3d.TextureCopyLocation{
		Resource:         res,
		Type:             d3d.TextureCopyTypeSubresourceIndex,
		SubresourceIndex: 0,
	}
	src := d3d.TextureCopyLocation{
		Resource:        upload.Resource,
		Type:            d3d.TextureCopyTypePlacedFootprint,
		PlacedFootprint: layout,
	}
	list.CopyTextureRegion(&dst, 0, 0, 0, &src, nil)

	return &Texture{Resource: res, Desc: desc}, nil
}

// stageRows copies img into dst one row at a time, each row starting at a
// multiple of rowPitch.
func stageRows(dst []byte, img *image.RGBA, rowPitch uint32) {
	bounds := img.Bounds()
	rowBytes := bounds.Dx() * 4
	for y := 0; y < bounds.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(dst[y*int(rowPitch):], src)
	}
}

func (t *Texture) Release() {
	if t == nil || t.Resource == nil {
		return
	}
	t.Resource.Release()
	t.Resource = nil
}

// Transition records a whole-resource state transition.
func Transition(list d3d.GraphicsCommandList, res d3d.Resource, before, after d3d.ResourceStates) {
	list.ResourceBarrier(d3d.ResourceBarrier{
		Type: d3d.ResourceBarrierTypeTransition,
		Transition: d3d.ResourceTransitionBarrier{
			Resource:    res,
			Subresource: d3d.ResourceBarrierAllSubresources,
			StateBefore: before,
			StateAfter:  after,
		},
	})
}
