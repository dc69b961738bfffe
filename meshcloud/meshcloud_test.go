package meshcloud

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asciiply "github.com/recolude/ascii-ply/ply"
)

func TestFromMeshPositionsOnly(t *testing.T) {
	mesh := modeling.NewPointCloud(
		map[string][]vector3.Vector[float64]{
			modeling.PositionAttribute: {
				vector3.New(1., 2., 3.),
				vector3.New(-0.5, 0., 1.25),
			},
		},
		nil,
		nil,
		nil,
	)

	pc, err := FromMesh(mesh)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, asciiply.Encode(&buf, pc))
	assert.Equal(t, `ply
format ascii 1.0
element vertex 2
property double x
property double y
property double z
end_header
1 2 3
-0.5 0 1.25
`, buf.String())
}

func TestFromMeshWithColor(t *testing.T) {
	mesh := modeling.NewPointCloud(
		map[string][]vector3.Vector[float64]{
			modeling.PositionAttribute: {vector3.New(1., 1., 1.)},
			modeling.ColorAttribute:    {vector3.New(1., 0.5, 0.)},
		},
		nil,
		nil,
		nil,
	)

	pc, err := FromMesh(mesh)
	require.NoError(t, err)

	points := pc.Elements[asciiply.Point()]
	require.Contains(t, points, "red")
	v, ok := points["red"].Data.At(0)
	require.True(t, ok)
	assert.Equal(t, asciiply.Uint(255), v)
	v, ok = points["green"].Data.At(0)
	require.True(t, ok)
	assert.Equal(t, asciiply.Uint(128), v)
	assert.Equal(t, "uchar", points["blue"].Type)
}

func TestColorChannelClamps(t *testing.T) {
	assert.Equal(t, asciiply.Uint(0), colorChannel(-0.2))
	assert.Equal(t, asciiply.Uint(255), colorChannel(1.7))
	assert.Equal(t, asciiply.Uint(64), colorChannel(0.25))
}

func TestReadCloudMissingFile(t *testing.T) {
	_, err := ReadCloud(filepath.Join(t.TempDir(), "missing.ply"))
	assert.Error(t, err)
}

func TestReadCloud(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.ply")
	require.NoError(t, os.WriteFile(path, []byte(`ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
end_header
1 2 3
2.5 0 -1
-3 4.5 6
`), 0o644))

	pc, err := ReadCloud(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, asciiply.Encode(&buf, pc))
	assert.Equal(t, `ply
format ascii 1.0
element vertex 3
property double x
property double y
property double z
end_header
1 2 3
2.5 0 -1
-3 4.5 6
`, buf.String())
}

func TestRapBinary(t *testing.T) {
	data := []byte("ply\nformat ascii 1.0\n")
	bin := RapBinary("cloud.ply", data, 3)
	assert.Equal(t, "cloud.ply", bin.Name())

	got, err := io.ReadAll(bin.Data())
	require.NoError(t, err)
	assert.Equal(t, data, got)

	mapping := bin.Metadata().Mapping()
	require.Contains(t, mapping, "points")
	require.Contains(t, mapping, "format")
	assert.Equal(t, "3", mapping["points"].String())
	assert.Equal(t, "ply ascii 1.0", mapping["format"].String())
}
