package opensfm

// ReconstructionJsonSchema is the top level of an OpenSFM reconstruction.json
// file, which holds one or more independent reconstructions.
type ReconstructionJsonSchema []ReconstructionSchema

type ReconstructionSchema struct {
	Cameras map[string]CameraSchema `json:"cameras"`
	Shots   map[string]ShotSchema   `json:"shots"`
	Points  map[string]PointSchema  `json:"points"`
}

type CameraSchema struct {
	ProjectionType string  `json:"projection_type"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Focal          float64 `json:"focal"`
	K1             float64 `json:"k1"`
	K2             float64 `json:"k2"`
}

type ShotSchema struct {
	Camera      string     `json:"camera"`
	Rotation    [3]float64 `json:"rotation"`
	Translation [3]float64 `json:"translation"`
	CaptureTime float64    `json:"capture_time"`
	Orientation int        `json:"orientation"`
	Scale       float64    `json:"scale"`
}

// PointSchema is a reconstructed point. Color channels range 0-255.
type PointSchema struct {
	Color       [3]float64 `json:"color"`
	Coordinates [3]float64 `json:"coordinates"`
}
