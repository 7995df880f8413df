package model

// Kernel is a square, odd-sized integer filter
type Kernel [][]int

// NeighborhoodKernel is the 8-connected Moore neighborhood: ones around a zero center
func NeighborhoodKernel() Kernel {
	return Kernel{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
}

// ConvolveSame convolves src with k and writes rows [startRow, endRow) of the same-size
// central region into dst. Positions outside src contribute zero; nothing wraps.
func ConvolveSame(src [][]uint8, k Kernel, dst [][]int, startRow, endRow int) {
	var (
		rows    = len(src)
		size    = len(k)
		half    = size / 2
		columns int
	)
	if rows > 0 {
		columns = len(src[0])
	}

	for r := startRow; r < endRow; r++ {
		for c := range columns {
			sum := 0
			for m := range size {
				// the kernel is flipped for a true convolution
				sr := r + half - m
				if sr < 0 || sr >= rows {
					continue
				}
				for n := range size {
					sc := c + half - n
					if sc < 0 || sc >= columns {
						continue
					}
					sum += int(src[sr][sc]) * k[m][n]
				}
			}
			dst[r][c] = sum
		}
	}
}
