package gfx

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/gpusamples/d3d12hello/d3d"
)

type Compiler interface {
	Compile(source []byte, sourceName, entryPoint, target string, flags d3d.CompileFlags) ([]byte, string, error)
	OutputDebugString(s string)
}

type Shader struct {
	Name       string
	EntryPoint string
	Target     string
	Bytecode   []byte
}

// LoadShader compiles one entry point with warnings treated as errors.
// Compiler output goes to the debug output channel and the log whether or
// not compilation succeeds.
func LoadShader(c Compiler, source []byte, name, entryPoint, target string) (*Shader, error) {
	code, diagnostics, err := c.Compile(source, name, entryPoint, target, d3d.CompileWarningsAreErrors)
	if diagnostics != "" {
		c.OutputDebugString(diagnostics)
		log.Printf("%s(%s): %s", name, entryPoint, diagnostics)
	}
	if err != nil {
		if diagnostics != "" {
			err = errors.WithDetail(err, diagnostics)
		}
		return nil, errors.Wrapf(err, "gfx: compiling %s %s (%s)", name, entryPoint, target)
	}

	return &Shader{
		Name:       name,
		EntryPoint: entryPoint,
		Target:     target,
		Bytecode:   code,
	}, nil
}
