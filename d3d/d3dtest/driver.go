package d3dtest

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type Driver struct {
	Log *Log

	// Guards the fields Compile and OutputDebugString append to, which may
	// be called concurrently.
	mu sync.Mutex

	DebugLayerEnabled bool
	Devices           []*Device
	Factories         []*Factory
	Events            []*Event

	// Keyed by entry point.
	CompileErrors map[string]error
	Diagnostics   map[string]string
	Compiled      []CompileCall

	SerializeError error
	Serialized     []*d3d.RootSignatureDesc
	DebugOutput    []string
}

type CompileCall struct {
	SourceName string
	EntryPoint string
	Target     string
	Flags      d3d.CompileFlags
}

func NewDriver() *Driver {
	return &Driver{
		Log:           &Log{},
		CompileErrors: map[string]error{},
		Diagnostics:   map[string]string{},
	}
}

func (d *Driver) EnableDebugLayer() error {
	d.Log.Add("Driver.EnableDebugLayer")
	d.DebugLayerEnabled = true
	return nil
}

func (d *Driver) CreateDevice(minimumLevel d3d.FeatureLevel) (d3d.Device, error) {
	d.Log.Add("Driver.CreateDevice(%#x)", uint32(minimumLevel))
	dev := newDevice(d.Log)
	dev.FeatureLevel = minimumLevel
	d.Devices = append(d.Devices, dev)
	return dev, nil
}

// Device returns the most recently created device.
func (d *Driver) Device() *Device {
	if len(d.Devices) == 0 {
		return nil
	}
	return d.Devices[len(d.Devices)-1]
}

func (d *Driver) CreateFactory(debug bool) (d3d.Factory, error) {
	d.Log.Add("Driver.CreateFactory(%v)", debug)
	f := &Factory{log: d.Log, Debug: debug}
	d.Factories = append(d.Factories, f)
	return f, nil
}

func (d *Driver) CreateEvent() (d3d.Event, error) {
	d.Log.Add("Driver.CreateEvent")
	e := &Event{log: d.Log}
	d.Events = append(d.Events, e)
	return e, nil
}

func (d *Driver) SerializeRootSignature(desc *d3d.RootSignatureDesc, version d3d.RootSignatureVersion) ([]byte, error) {
	d.Log.Add("Driver.SerializeRootSignature(%d)", version)
	if d.SerializeError != nil {
		return nil, d.SerializeError
	}
	d.Serialized = append(d.Serialized, desc)
	return []byte(fmt.Sprintf("rootsig:%d", len(desc.Parameters))), nil
}

func (d *Driver) Compile(source []byte, sourceName, entryPoint, target string, flags d3d.CompileFlags) ([]byte, string, error) {
	d.Log.Add("Driver.Compile(%s,%s)", entryPoint, target)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Compiled = append(d.Compiled, CompileCall{SourceName: sourceName, EntryPoint: entryPoint, Target: target, Flags: flags})
	diag := d.Diagnostics[entryPoint]
	if err := d.CompileErrors[entryPoint]; err != nil {
		return nil, diag, err
	}
	if len(source) == 0 {
		return nil, diag, errors.New("d3dtest: empty source")
	}
	return []byte("dxbc:" + entryPoint + ":" + target), diag, nil
}

func (d *Driver) OutputDebugString(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.DebugOutput = append(d.DebugOutput, s)
}

type Factory struct {
	log        *Log
	Debug      bool
	Released   bool
	SwapChains []*SwapChain
	Descs      []d3d.SwapChainDesc
}

func (f *Factory) Release() {
	f.log.Add("Factory.Release")
	f.Released = true
}

func (f *Factory) CreateSwapChain(queue d3d.CommandQueue, desc *d3d.SwapChainDesc) (d3d.SwapChain, error) {
	f.log.Add("Factory.CreateSwapChain")
	if queue == nil {
		return nil, d3d.DXGIErrorInvalidCall
	}
	sc := &SwapChain{
		log:         f.log,
		BufferCount: desc.BufferCount,
		Format:      desc.BufferDesc.Format,
	}
	sc.allocate()
	f.SwapChains = append(f.SwapChains, sc)
	f.Descs = append(f.Descs, *desc)
	return sc, nil
}

// Event is an auto-reset event. Wait fails instead of blocking when nothing
// has signalled it, so a broken fence protocol shows up as an error.
type Event struct {
	log      *Log
	signaled bool
	Closed   bool
	Waits    int
}

func (e *Event) signal() {
	e.signaled = true
}

func (e *Event) Wait() error {
	e.log.Add("Event.Wait")
	e.Waits++
	if !e.signaled {
		return errors.New("d3dtest: waiting on an event that will never be signaled")
	}
	e.signaled = false
	return nil
}

func (e *Event) Close() error {
	e.log.Add("Event.Close")
	e.Closed = true
	return nil
}
