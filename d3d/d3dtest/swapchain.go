package d3dtest

import (
	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type SwapChain struct {
	log *Log

	BufferCount uint32
	Width       uint32
	Height      uint32
	Format      d3d.Format
	Buffers     []*Resource
	Current     uint32
	Presents    int
	Resizes     int
	Fullscreen  bool
	Released    bool
}

func (s *SwapChain) allocate() {
	s.Buffers = make([]*Resource, s.BufferCount)
	for i := range s.Buffers {
		s.Buffers[i] = &Resource{
			log: s.log,
			DescData: d3d.ResourceDesc{
				Dimension:        d3d.ResourceDimensionTexture2D,
				Width:            uint64(s.Width),
				Height:           s.Height,
				DepthOrArraySize: 1,
				MipLevels:        1,
				Format:           s.Format,
				SampleDesc:       d3d.SampleDesc{Count: 1},
			},
		}
	}
	s.Current = 0
}

func (s *SwapChain) Release() {
	s.log.Add("SwapChain.Release")
	s.Released = true
}

func (s *SwapChain) Present(syncInterval uint32, flags d3d.PresentFlags) error {
	s.log.Add("SwapChain.Present(%d,%d)", syncInterval, flags)
	s.Presents++
	s.Current = (s.Current + 1) % s.BufferCount
	return nil
}

func (s *SwapChain) Buffer(index uint32) (d3d.Resource, error) {
	s.log.Add("SwapChain.GetBuffer(%d)", index)
	if index >= uint32(len(s.Buffers)) {
		return nil, d3d.DXGIErrorInvalidCall
	}
	b := s.Buffers[index]
	b.Released = false
	return b, nil
}

// ResizeBuffers fails like DXGI does while any buffer handed out by Buffer
// is still referenced.
func (s *SwapChain) ResizeBuffers(bufferCount, width, height uint32, format d3d.Format, flags d3d.SwapChainFlags) error {
	s.log.Add("SwapChain.ResizeBuffers(%d,%d,%d)", bufferCount, width, height)
	for i, b := range s.Buffers {
		if b.Name != "" && !b.Released {
			return errors.Wrapf(d3d.DXGIErrorInvalidCall, "d3dtest: buffer %d still referenced", i)
		}
	}
	s.BufferCount = bufferCount
	s.Width = width
	s.Height = height
	s.Format = format
	s.Resizes++
	s.allocate()
	return nil
}

func (s *SwapChain) CurrentBackBufferIndex() uint32 {
	return s.Current
}

func (s *SwapChain) SetFullscreenState(fullscreen bool) error {
	s.log.Add("SwapChain.SetFullscreenState(%v)", fullscreen)
	s.Fullscreen = fullscreen
	return nil
}
