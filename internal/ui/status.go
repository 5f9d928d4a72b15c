package ui

// Status is the per-frame snapshot shown on the HUD.
type Status struct {
	Generation uint64
	Running    bool
	Scale      float64
	OffsetX    float64
	OffsetY    float64
	TPS        int
	Backend    string
}
