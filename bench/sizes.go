package bench

// Sweep bounds. The small case runs first, then the regular stride.
const (
	SmallSize = 2
	SizeStep  = 500
	MaxSize   = 20000
)

// Sizes returns the vertex counts of the benchmark sweep:
// SmallSize, then SizeStep, 2·SizeStep, ..., MaxSize inclusive.
// A fresh slice is returned on every call.
func Sizes() []int {
	sizes := make([]int, 0, 1+MaxSize/SizeStep)
	sizes = append(sizes, SmallSize)
	for n := SizeStep; n <= MaxSize; n += SizeStep {
		sizes = append(sizes, n)
	}

	return sizes
}
