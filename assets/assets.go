// Package assets embeds the files the sample draws with and decodes them
// into the forms the renderer uploads.
package assets

import (
	"embed"
	"image"
	"image/png"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/gpusamples/d3d12hello/gfx"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

//go:embed shaders images meshes
var fileSystem embed.FS

const (
	ShaderSourceName = "shaders.hlsl"
	VertexEntryPoint = "VSMain"
	PixelEntryPoint  = "PSMain"
	VertexTarget     = "vs_5_0"
	PixelTarget      = "ps_5_0"

	texturePath  = "images/seafloor.png"
	meshPath     = "meshes/triangle.obj"
	materialPath = "meshes/triangle.mtl"
)

type Assets struct {
	ShaderSource []byte
	Texture      *image.RGBA
	Vertices     []gfx.VertexP3FT2F
}

// Load reads the shader source and decodes the texture and the triangle
// mesh concurrently.
func Load() (*Assets, error) {
	a := &Assets{}

	var err error
	a.ShaderSource, err = fileSystem.ReadFile("shaders/" + ShaderSourceName)
	if err != nil {
		return nil, errors.Wrap(err, "assets: reading shader source")
	}

	var group errgroup.Group
	group.Go(func() error {
		f, err := fileSystem.Open(texturePath)
		if err != nil {
			return errors.Wrap(err, "assets: opening texture")
		}
		defer f.Close()

		a.Texture, err = LoadTexture(f)
		return err
	})
	group.Go(func() error {
		meshFile, err := fileSystem.Open(meshPath)
		if err != nil {
			return errors.Wrap(err, "assets: opening mesh")
		}
		defer meshFile.Close()

		matFile, err := fileSystem.Open(materialPath)
		if err != nil {
			return errors.Wrap(err, "assets: opening material library")
		}
		defer matFile.Close()

		a.Vertices, err = LoadTriangle(meshFile, matFile)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return a, nil
}

// LoadTexture decodes a PNG into tightly packed RGBA8 pixels whose bounds
// start at the origin.
func LoadTexture(r io.Reader) (*image.RGBA, error) {
	decoded, err := png.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "assets: decoding texture")
	}

	if rgba, ok := decoded.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}

	bounds := decoded.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), decoded, bounds.Min, draw.Src)
	return rgba, nil
}

// LoadTriangle flattens every face of an OBJ mesh into a triangle list.
// Polygons are fanned from their first corner and V is flipped so the image
// top row is V=0.
func LoadTriangle(mesh, materials io.Reader) ([]gfx.VertexP3FT2F, error) {
	decoder, err := obj.DecodeReader(mesh, materials)
	if err != nil {
		return nil, errors.Wrap(err, "assets: decoding mesh")
	}

	var vertices []gfx.VertexP3FT2F
	for _, decodedObj := range decoder.Objects {
		for _, face := range decodedObj.Faces {
			for i := 2; i < len(face.Vertices); i++ {
				for _, corner := range [3]int{0, i - 1, i} {
					v, err := faceVertex(decoder, face, corner)
					if err != nil {
						return nil, errors.Wrapf(err, "assets: object %q", decodedObj.Name)
					}
					vertices = append(vertices, v)
				}
			}
		}
	}
	if len(vertices) == 0 {
		return nil, errors.New("assets: mesh has no faces")
	}
	return vertices, nil
}

func faceVertex(decoder *obj.Decoder, face obj.Face, faceIndex int) (gfx.VertexP3FT2F, error) {
	if faceIndex >= len(face.Uvs) {
		return gfx.VertexP3FT2F{}, errors.New("face corner has no texture coordinate")
	}
	vertInd := face.Vertices[faceIndex]
	uvInd := face.Uvs[faceIndex]
	if vertInd < 0 || vertInd*3+2 >= len(decoder.Vertices) {
		return gfx.VertexP3FT2F{}, errors.Newf("vertex index %d out of range", vertInd)
	}
	if uvInd < 0 || uvInd*2+1 >= len(decoder.Uvs) {
		return gfx.VertexP3FT2F{}, errors.Newf("texture coordinate index %d out of range", uvInd)
	}

	return gfx.VertexP3FT2F{
		Pos: [3]float32{
			decoder.Vertices[vertInd*3],
			decoder.Vertices[vertInd*3+1],
			decoder.Vertices[vertInd*3+2],
		},
		Tex: [2]float32{
			decoder.Uvs[uvInd*2],
			1.0 - decoder.Uvs[uvInd*2+1],
		},
	}, nil
}
