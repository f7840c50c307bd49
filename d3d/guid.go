package d3d

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// GUID has the in-memory layout of the Windows GUID struct.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDFromUUID converts the canonical (big-endian) textual byte order of u
// into the mixed-endian Windows layout.
func GUIDFromUUID(u uuid.UUID) GUID {
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g
}

func mustGUID(s string) GUID {
	return GUIDFromUUID(uuid.MustParse(s))
}

var (
	iidID3D12Device              = mustGUID("189819f1-1db6-4b57-be54-1821339b85f7")
	iidID3D12CommandQueue        = mustGUID("0ec870a6-5d7e-4c22-8cfc-5baae07616ed")
	iidID3D12CommandAllocator    = mustGUID("6102dee4-af59-4b09-b999-b44d73f09b24")
	iidID3D12GraphicsCommandList = mustGUID("5b160d0f-ac1b-4185-8ba8-b3ae42a5a455")
	iidID3D12Fence               = mustGUID("0a753dcf-c4d8-4b91-adf6-be5a60d95a76")
	iidID3D12DescriptorHeap      = mustGUID("8efb471d-616c-4f49-90f7-127bb763fa51")
	iidID3D12Resource            = mustGUID("696442be-a72e-4059-bc79-5b5c98040fad")
	iidID3D12RootSignature       = mustGUID("c54a6b66-72df-4ee8-8be5-a946a1429214")
	iidID3D12PipelineState       = mustGUID("765a30f3-f624-4c6f-a828-ace948622445")
	iidID3D12Debug               = mustGUID("344488b7-6846-474b-b989-f027448245e0")
	iidIDXGIFactory2             = mustGUID("50c83a1c-e072-4c48-87b0-3630fa36a6d0")
	iidIDXGISwapChain3           = mustGUID("94d99bdb-f1f8-4ab0-b236-7da0170edab1")
)
