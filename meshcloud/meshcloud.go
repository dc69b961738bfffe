// Package meshcloud moves point data between polyform meshes, RAP binaries
// and ply.PointCloud.
package meshcloud

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	rapio "github.com/recolude/rap/format/io"
	"github.com/recolude/rap/format/metadata"

	asciiply "github.com/recolude/ascii-ply/ply"
)

var ErrNoPositions = errors.New("mesh has no position data")

// ReadCloud loads any PLY file polyform understands, ASCII or binary, and
// returns its vertices as a point cloud.
func ReadCloud(plyFile string) (asciiply.PointCloud, error) {
	plyFileHandle, err := os.Open(plyFile)
	if err != nil {
		return asciiply.PointCloud{}, err
	}
	defer plyFileHandle.Close()

	mesh, err := ply.ReadMesh(plyFileHandle)
	if err != nil {
		return asciiply.PointCloud{}, fmt.Errorf("reading %s: %w", plyFile, err)
	}

	return FromMesh(*mesh)
}

// FromMesh takes the vertices of mesh as points. Positions become x, y and z
// doubles; colors, when every vertex has one, become red, green and blue
// uchars. Face data is ignored.
func FromMesh(mesh modeling.Mesh) (asciiply.PointCloud, error) {
	view := mesh.View()

	positions := view.Float3Data[modeling.PositionAttribute]
	if len(positions) == 0 {
		return asciiply.PointCloud{}, ErrNoPositions
	}

	x := make(asciiply.Array[asciiply.Float64], len(positions))
	y := make(asciiply.Array[asciiply.Float64], len(positions))
	z := make(asciiply.Array[asciiply.Float64], len(positions))
	for i, p := range positions {
		x[i] = asciiply.Float64(p.X())
		y[i] = asciiply.Float64(p.Y())
		z[i] = asciiply.Float64(p.Z())
	}

	attrs := asciiply.Element{
		"x": {Type: "double", Data: x},
		"y": {Type: "double", Data: y},
		"z": {Type: "double", Data: z},
	}

	colors := view.Float3Data[modeling.ColorAttribute]
	if len(colors) == len(positions) {
		r := make(asciiply.Array[asciiply.Uint], len(colors))
		g := make(asciiply.Array[asciiply.Uint], len(colors))
		b := make(asciiply.Array[asciiply.Uint], len(colors))
		for i, c := range colors {
			r[i] = colorChannel(c.X())
			g[i] = colorChannel(c.Y())
			b[i] = colorChannel(c.Z())
		}
		attrs["red"] = asciiply.Attribute{Type: "uchar", Data: r}
		attrs["green"] = asciiply.Attribute{Type: "uchar", Data: g}
		attrs["blue"] = asciiply.Attribute{Type: "uchar", Data: b}
	}

	return asciiply.NewPointCloud(attrs), nil
}

// colorChannel maps polyform's 0-1 color range onto a byte.
func colorChannel(v float64) asciiply.Uint {
	return asciiply.Uint(math.Max(0, math.Min(255, math.Round(v*255))))
}

// RapBinary wraps an encoded PLY file so it can ride along in a recording.
func RapBinary(name string, data []byte, points int) rapio.Binary {
	return rapio.NewBinary(name, data, metadata.NewBlock(map[string]metadata.Property{
		"points": metadata.NewIntProperty(points),
		"format": metadata.NewStringProperty("ply ascii 1.0"),
	}))
}
