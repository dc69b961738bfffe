// Package plytest provides point clouds paired with the exact header and
// data text the ply package must produce for them.
package plytest

import (
	"time"

	"github.com/recolude/ascii-ply/ply"
)

// Fixture is a cloud and its expected serialization. Header stops before
// the end_header line.
type Fixture struct {
	Cloud  ply.PointCloud
	Header string
	Data   string
}

// File is the full expected output.
func (f Fixture) File() string {
	return f.Header + "end_header\n" + f.Data
}

// Simple is a three point cloud with only coordinates.
func Simple() Fixture {
	return Fixture{
		Cloud: ply.NewPointCloud(ply.Element{
			"x": ply.ArrayOf[ply.Float32]("float", 1, 2, 3),
			"y": ply.ArrayOf[ply.Float32]("float", 20, 30, 40),
			"z": ply.ArrayOf[ply.Float32]("float", 300, 400, 500),
		}),
		Header: `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
`,
		Data: `1 20 300
2 30 400
3 40 500
`,
	}
}

// ProvenanceTime is the timestamp of the record in Complex.
var ProvenanceTime = time.Date(2018, 1, 18, 16, 1, 0, 0, time.UTC)

// Complex has an extra point property, a single row auxiliary element and
// one provenance record.
func Complex() Fixture {
	pc := ply.NewPointCloud(ply.Element{
		"x":      ply.ArrayOf[ply.Float32]("float", 1, 2, 3, 4, 5),
		"y":      ply.ArrayOf[ply.Float32]("float", 2, 3, 4, 5, 6),
		"z":      ply.ArrayOf[ply.Float32]("float", 3, 4, 5, 6, 7),
		"return": ply.ArrayOf[ply.Int]("int", 1, 1, 2, 2, 1),
	})
	pc.AddElement("point_cloud", ply.Element{
		"offset": ply.ScalarOf[ply.Float64]("double", 12.1),
	})
	pc.Log(ply.Record{"time": ProvenanceTime, "module": "filter"})

	return Fixture{
		Cloud: pc,
		Header: `ply
format ascii 1.0
comment [
comment {"module":"filter","time":"2018-01-18T16:01:00Z"}
comment ]
element vertex 5
property float x
property float y
property float z
property int return
element point_cloud 1
property double offset
`,
		Data: `1 2 3 1
2 3 4 1
3 4 5 2
4 5 6 2
5 6 7 1
12.1
`,
	}
}
