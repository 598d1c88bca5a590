package random

// Ranges of plausible sensor readings
const (
	minActions, maxActions       = 1000, 10000
	minWeight, maxWeight         = 80, 140
	minHeight, maxHeight         = 150, 220
	minPoolLength, maxPoolLength = 10, 50
	minPoolCount, maxPoolCount   = 1, 10
	maxDurationHours             = 3
)

// Actions returns random steps or strokes count
func Actions() int {
	return Int(minActions, maxActions)
}

// Duration returns random positive training duration in hours
func Duration() float64 {
	for {
		if d := float64(rnd.Int63n(maxDurationHours)) + rnd.Float64(); d > 0 {
			return d
		}
	}
}

// Weight returns random athlete weight in kg
func Weight() float64 {
	return float64(Int(minWeight, maxWeight))
}

// Height returns random athlete height in cm
func Height() float64 {
	return float64(Int(minHeight, maxHeight))
}

// PoolLength returns random pool length in meters
func PoolLength() int {
	return Int(minPoolLength, maxPoolLength)
}

// PoolCount returns random number of crossed pools
func PoolCount() int {
	return Int(minPoolCount, maxPoolCount)
}
