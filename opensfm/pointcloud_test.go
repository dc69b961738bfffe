package opensfm

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recolude/ascii-ply/ply"
)

const reconstructionJSON = `[
  {
    "cameras": {"v2 unknown 640 480 perspective 0.85": {"projection_type": "perspective", "width": 640, "height": 480, "focal": 0.85}},
    "shots": {"01.jpg": {"camera": "v2 unknown 640 480 perspective 0.85", "capture_time": 12.5, "scale": 1}},
    "points": {
      "7": {"color": [0, 128, 255], "coordinates": [4, 5, 6]},
      "12": {"color": [255, 0, 0], "coordinates": [1, 2, 3]}
    }
  }
]`

func TestReadReconstruction(t *testing.T) {
	recon, err := ReadReconstruction(strings.NewReader(reconstructionJSON))
	require.NoError(t, err)

	assert.Len(t, recon.Cameras, 1)
	assert.Len(t, recon.Points, 2)
	assert.Equal(t, [3]float64{1, 2, 3}, recon.Points["12"].Coordinates)
	assert.Equal(t, 12.5, recon.Shots["01.jpg"].CaptureTime)
	assert.Equal(t, 640, recon.Cameras["v2 unknown 640 480 perspective 0.85"].Width)
}

func TestReadReconstructionRejects(t *testing.T) {
	tests := map[string]string{
		"not json": `{`,
		"empty":    `[]`,
		"multiple": `[{"points": {}}, {"points": {}}]`,
	}
	for name, in := range tests {
		in := in
		t.Run(name, func(t *testing.T) {
			_, err := ReadReconstruction(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestToCloud(t *testing.T) {
	recon, err := ReadReconstruction(strings.NewReader(reconstructionJSON))
	require.NoError(t, err)

	now := time.Date(2023, 5, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	pc, err := ToCloud(recon, "reconstruction.json", now)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ply.Encode(&buf, pc))

	want := `ply
format ascii 1.0
comment [
comment {"cameras":1,"module":"opensfm","points":2,"shots":1,"source":"reconstruction.json","time":"2023-05-01T08:00:00Z"}
comment ]
element vertex 2
property double x
property double y
property double z
property uchar blue
property uchar green
property uchar red
end_header
1 2 3 0 0 255
4 5 6 255 128 0
`
	assert.Equal(t, want, buf.String())
}

func TestToCloudWithoutPoints(t *testing.T) {
	_, err := ToCloud(ReconstructionSchema{}, "empty.json", time.Now())
	assert.Error(t, err)
}
