package renderer

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

type Config struct {
	Title  string
	Width  int32
	Height int32

	// DebugLayer turns on the D3D12 debug layer and the DXGI debug factory.
	DebugLayer bool
	ClearColor [4]float32
}

func DefaultConfig() Config {
	return Config{
		Title:      "DirectX 12 Test",
		Width:      800,
		Height:     600,
		ClearColor: [4]float32{0, 0.2, 0.4, 1},
	}
}

// ProcessCommandLineArgs applies args (without the program name) on top of
// DefaultConfig. showHelp is true when the caller should print Usage and
// exit.
func ProcessCommandLineArgs(args []string) (cfg Config, showHelp bool, err error) {
	cfg = DefaultConfig()

	for _, arg := range args {
		switch arg {
		case "--debug-layer":
			cfg.DebugLayer = true
		case "--help", "-h":
			return cfg, true, nil
		default:
			return cfg, false, errors.Newf("unrecognized option: %s\nuse --help or -h for option list", arg)
		}
	}

	return cfg, false, nil
}

func Usage(w io.Writer) {
	fmt.Fprintln(w, "\nOptions")
	fmt.Fprintln(w, "\t--debug-layer")
	fmt.Fprintln(w, "\t\tEnable the Direct3D 12 debug layer and the DXGI debug factory")
	fmt.Fprintln(w, "\t--help, -h")
	fmt.Fprintln(w, "\t\tPrint this list")
}
