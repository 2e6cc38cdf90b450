package matrix

// RowEchelon reduces m to row-echelon form in place on a clone and returns
// it along with the rank. Key generation, signing and verification do not
// call it (the MinRank relation check compares matrices with Equal). It
// branches on its input, so the constant-time discipline required of
// secret-operand arithmetic is relaxed here; the control flow below branches
// on pivot values directly, matching AU-HC-mayo-go's non-bitsliced
// mayo/math.go EchelonForm sketch rather than the bitsliced, constant-time
// sampleSolution used for secret-dependent linear algebra.
func (m *Matrix) RowEchelon() (*Matrix, int) {
	e := m.Clone()
	rank := 0
	for col := 0; col < e.cols && rank < e.rows; col++ {
		pivot := -1
		for r := rank; r < e.rows; r++ {
			if e.At(r, col) != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		e.swapRows(rank, pivot)
		inv := e.f.Inv(e.At(rank, col))
		for c := col; c < e.cols; c++ {
			e.Set(rank, c, e.f.Mul(inv, e.At(rank, c)))
		}
		for r := 0; r < e.rows; r++ {
			if r == rank {
				continue
			}
			factor := e.At(r, col)
			if factor == 0 {
				continue
			}
			for c := col; c < e.cols; c++ {
				e.Set(r, c, e.f.Add(e.At(r, c), e.f.Mul(factor, e.At(rank, c))))
			}
		}
		rank++
	}
	return e, rank
}

// Rank returns the rank of m over its field.
func (m *Matrix) Rank() int {
	_, rank := m.RowEchelon()
	return rank
}

func (m *Matrix) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.cols : (a+1)*m.cols]
	rb := m.data[b*m.cols : (b+1)*m.cols]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

// Solve solves A·x = b for x when A has full column rank, by row-reducing
// the augmented matrix [A | b]. Returns ok=false if A does not have full
// column rank (no unique solution).
func Solve(a *Matrix, b []byte) (x []byte, ok bool) {
	if a.Rank() < a.cols {
		return nil, false
	}
	aug := HStack(a, FromFlat(a.f, len(b), 1, append([]byte(nil), b...)))
	echelon, _ := aug.RowEchelon()
	x = make([]byte, a.cols)
	for i := 0; i < a.cols; i++ {
		x[i] = echelon.At(i, a.cols)
	}
	return x, true
}
