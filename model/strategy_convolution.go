package model

// ConvolutionStrategyName is the registry key of ConvolutionStrategy
const ConvolutionStrategyName = "convolution"

// ConvolutionStrategy treats the grid as a signal and convolves it with the
// neighborhood kernel, keeping the same-size central region. Every cell is updated.
type ConvolutionStrategy struct {
	kernel Kernel
}

// NewConvolutionStrategy returns a strategy using the 8-connected kernel
func NewConvolutionStrategy() *ConvolutionStrategy {
	return &ConvolutionStrategy{kernel: NeighborhoodKernel()}
}

func (s *ConvolutionStrategy) Name() string { return ConvolutionStrategyName }

func (s *ConvolutionStrategy) Frozen(*Grid, int, int) bool { return false }

func (s *ConvolutionStrategy) Neighbors(g *Grid, counts [][]int, startRow, endRow int) {
	ConvolveSame(g.cells, s.kernel, counts, startRow, endRow)
}

func init() {
	RegisterStrategy(ConvolutionStrategyName, func() CountingStrategy { return NewConvolutionStrategy() })
}
