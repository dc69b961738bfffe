package opensfm

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/recolude/ascii-ply/meshcloud"
	"github.com/recolude/ascii-ply/ply"
)

// ReadReconstruction decodes a reconstruction.json stream. Files holding more
// than one reconstruction are rejected.
func ReadReconstruction(r io.Reader) (ReconstructionSchema, error) {
	var file ReconstructionJsonSchema
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return ReconstructionSchema{}, fmt.Errorf("decoding reconstruction: %w", err)
	}

	if len(file) == 0 {
		return ReconstructionSchema{}, fmt.Errorf("reconstruction json contained no reconstructions")
	}

	if len(file) > 1 {
		return ReconstructionSchema{}, fmt.Errorf("unimplemented scenario where reconstruction json contained more than one reconstruction")
	}

	return file[0], nil
}

// PointsToMesh builds a point topology mesh, visiting points in id order.
func PointsToMesh(points map[string]PointSchema) modeling.Mesh {
	ids := make([]string, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	positionData := make([]vector3.Float64, 0, len(points))
	colorData := make([]vector3.Float64, 0, len(points))

	for _, id := range ids {
		p := points[id]
		positionData = append(positionData, vector3.New(p.Coordinates[0], p.Coordinates[1], p.Coordinates[2]))
		colorData = append(colorData, vector3.New(p.Color[0], p.Color[1], p.Color[2]).DivByConstant(255.))
	}

	return modeling.NewPointCloud(
		map[string][]vector3.Vector[float64]{
			modeling.PositionAttribute: positionData,
			modeling.ColorAttribute:    colorData,
		},
		nil,
		nil,
		nil,
	)
}

// ToCloud converts the reconstructed points into a writable cloud and records
// where they came from.
func ToCloud(recon ReconstructionSchema, source string, now time.Time) (ply.PointCloud, error) {
	if len(recon.Points) == 0 {
		return ply.PointCloud{}, fmt.Errorf("reconstruction has no points")
	}

	pc, err := meshcloud.FromMesh(PointsToMesh(recon.Points))
	if err != nil {
		return ply.PointCloud{}, err
	}

	pc.Log(ply.Record{
		"module":  "opensfm",
		"source":  source,
		"time":    now.UTC(),
		"cameras": len(recon.Cameras),
		"shots":   len(recon.Shots),
		"points":  len(recon.Points),
	})
	return pc, nil
}
