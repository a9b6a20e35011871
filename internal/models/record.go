package models

// MJDOffset converts a Julian date to a modified Julian date.
const MJDOffset = 2400000.5

// Record is one row of a Horizons vector table. Epoch is a modified Julian
// date in the requested time scale.
type Record struct {
	Epoch    float64    `json:"epoch"`
	Calendar string     `json:"calendar"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}
