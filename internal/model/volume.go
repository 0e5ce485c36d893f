package model

// VolumeReading compares the current volume with its history.
type VolumeReading struct {
	Current float64
	Average float64
	Ratio   float64 // 50 is a placeholder when history is too short
	Status  VolumeStatus
	Delta   VolumeDelta
}

// VWAPReading relates a price to the volume-weighted average price.
type VWAPReading struct {
	VWAP      float64
	Price     float64
	Diff      float64
	DiffPct   float64
	AboveVWAP bool
}

// VolumeReport is the volume panel.
type VolumeReport struct {
	Volume VolumeReading
	VWAP   VWAPReading
	Note   VolumeNote
}
