//go:build windows && amd64

package d3d

import (
	"syscall"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

var (
	d3d12              = windows.NewLazySystemDLL("d3d12.dll")
	procCreateDevice   = d3d12.NewProc("D3D12CreateDevice")
	procDebugInterface = d3d12.NewProc("D3D12GetDebugInterface")
	procSerializeRS    = d3d12.NewProc("D3D12SerializeRootSignature")

	dxgi                   = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory2 = dxgi.NewProc("CreateDXGIFactory2")

	d3dcompiler    = windows.NewLazySystemDLL("d3dcompiler_47.dll")
	procD3DCompile = d3dcompiler.NewProc("D3DCompile")

	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procOutputDebugString = kernel32.NewProc("OutputDebugStringW")
)

const dxgiCreateFactoryDebug = 0x01

type driver struct{}

// Load resolves the Direct3D 12, DXGI and shader compiler DLLs.
func Load() (Driver, error) {
	for _, p := range []*windows.LazyProc{procCreateDevice, procDebugInterface, procSerializeRS, procCreateDXGIFactory2, procD3DCompile} {
		if err := p.Find(); err != nil {
			return nil, errors.Wrapf(err, "d3d: loading %s", p.Name)
		}
	}
	return driver{}, nil
}

type iD3D12Debug struct {
	vtbl *iD3D12DebugVtbl
}

func (driver) EnableDebugLayer() error {
	var dbg *iD3D12Debug
	r, _, _ := syscall.SyscallN(procDebugInterface.Addr(),
		uintptr(unsafe.Pointer(&iidID3D12Debug)), uintptr(unsafe.Pointer(&dbg)))
	if err := checkHRESULT("D3D12GetDebugInterface", r); err != nil {
		return err
	}
	syscall.SyscallN(dbg.vtbl.EnableDebugLayer, uintptr(unsafe.Pointer(dbg)))
	syscall.SyscallN(dbg.vtbl.Release, uintptr(unsafe.Pointer(dbg)))
	return nil
}

func (driver) CreateDevice(minimumLevel FeatureLevel) (Device, error) {
	var d *iD3D12Device
	r, _, _ := syscall.SyscallN(procCreateDevice.Addr(), 0, uintptr(minimumLevel),
		uintptr(unsafe.Pointer(&iidID3D12Device)), uintptr(unsafe.Pointer(&d)))
	if err := checkHRESULT("D3D12CreateDevice", r); err != nil {
		return nil, err
	}
	return d, nil
}

func (driver) CreateFactory(debug bool) (Factory, error) {
	var flags uint32
	if debug {
		flags |= dxgiCreateFactoryDebug
	}
	var f *iDXGIFactory2
	r, _, _ := syscall.SyscallN(procCreateDXGIFactory2.Addr(), uintptr(flags),
		uintptr(unsafe.Pointer(&iidIDXGIFactory2)), uintptr(unsafe.Pointer(&f)))
	if err := checkHRESULT("CreateDXGIFactory2", r); err != nil {
		return nil, err
	}
	return f, nil
}

func (driver) CreateEvent() (Event, error) {
	h, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return nil, errors.Wrap(err, "d3d: CreateEvent failed")
	}
	return &event{handle: h}, nil
}

func (driver) SerializeRootSignature(desc *RootSignatureDesc, version RootSignatureVersion) ([]byte, error) {
	b := buildRootSignatureDesc(desc)
	var blob, errBlob *iD3DBlob
	r, _, _ := syscall.SyscallN(procSerializeRS.Addr(), uintptr(unsafe.Pointer(&b.desc)), uintptr(version),
		uintptr(unsafe.Pointer(&blob)), uintptr(unsafe.Pointer(&errBlob)))
	defer blob.Release()
	defer errBlob.Release()

	if err := checkHRESULT("D3D12SerializeRootSignature", r); err != nil {
		if msg := errBlob.Bytes(); len(msg) > 0 {
			err = errors.WithDetail(err, string(msg))
		}
		return nil, err
	}
	return blob.Bytes(), nil
}

func (driver) Compile(source []byte, sourceName, entryPoint, target string, flags CompileFlags) ([]byte, string, error) {
	if len(source) == 0 {
		return nil, "", errors.New("d3d: empty shader source")
	}
	name := cString(sourceName)
	entry := cString(entryPoint)
	tgt := cString(target)

	var code, diag *iD3DBlob
	r, _, _ := syscall.SyscallN(procD3DCompile.Addr(),
		uintptr(unsafe.Pointer(&source[0])), uintptr(len(source)), uintptr(unsafe.Pointer(&name[0])),
		0, 0,
		uintptr(unsafe.Pointer(&entry[0])), uintptr(unsafe.Pointer(&tgt[0])),
		uintptr(flags), 0,
		uintptr(unsafe.Pointer(&code)), uintptr(unsafe.Pointer(&diag)))
	defer code.Release()
	defer diag.Release()

	diagnostics := string(trimNUL(diag.Bytes()))
	if err := checkHRESULT("D3DCompile", r); err != nil {
		return nil, diagnostics, err
	}
	return code.Bytes(), diagnostics, nil
}

func (driver) OutputDebugString(s string) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return
	}
	procOutputDebugString.Call(uintptr(unsafe.Pointer(p)))
}

func trimNUL(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}
