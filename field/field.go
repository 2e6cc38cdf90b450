// Package field implements arithmetic over GF(2^m) for the fixed m the
// shipped parameter sets use (m=4, i.e. GF(16), for params_tag 0x01).
//
// Elements are represented as the low m bits of a byte. Addition is XOR.
// Multiplication and inversion are table-driven, built once from the
// degree-m irreducible polynomial when New is called, following the nibble-wise
// multiplication table approach AU-HC-mayo-go's field package uses for
// GF(16).
package field

import "fmt"

// Field holds the precomputed multiplication and inversion tables for one
// fixed degree m. All arithmetic is total: Inv(0) returns 0 rather than
// panicking, matching spec's invariant that inversion of zero is never fed
// in by a well-behaved caller.
type Field struct {
	m        int
	size     int
	poly     uint16
	mulTable [][]byte
	invTable []byte
}

// New builds the field GF(2^m) reduced by the given irreducible polynomial
// (encoded with its degree-m bit included, e.g. 0x13 for x^4+x+1). Only m in
// [1,8] is supported since elements must fit a byte.
func New(m int, poly uint16) *Field {
	if m <= 0 || m > 8 {
		panic(fmt.Sprintf("field: unsupported degree m=%d", m))
	}
	size := 1 << uint(m)
	f := &Field{m: m, size: size, poly: poly}
	f.mulTable, f.invTable = f.generateTables()
	return f
}

// Degree returns m, the field's extension degree over GF(2).
func (f *Field) Degree() int { return f.m }

// Size returns 2^m, the number of elements in the field.
func (f *Field) Size() int { return f.size }

// Add returns a+b, which over GF(2^m) is simply XOR.
func (f *Field) Add(a, b byte) byte { return a ^ b }

// Mul returns a*b using the precomputed table.
func (f *Field) Mul(a, b byte) byte { return f.mulTable[a][b] }

// Inv returns the multiplicative inverse of a, or 0 if a == 0.
func (f *Field) Inv(a byte) byte { return f.invTable[a] }

// mulNoTable carries out carryless multiplication modulo the field's
// irreducible polynomial, one bit of b at a time. Used only to build the
// lookup tables; the hot path always goes through Mul.
func (f *Field) mulNoTable(a, b byte) byte {
	var r uint16
	av := uint16(a)
	for i := 0; i < f.m; i++ {
		if b&(1<<uint(i)) != 0 {
			r ^= av << uint(i)
		}
	}
	for bit := 2*f.m - 2; bit >= f.m; bit-- {
		if r&(1<<uint(bit)) != 0 {
			r ^= f.poly << uint(bit-f.m)
		}
	}
	return byte(r) & byte(f.size-1)
}

func (f *Field) generateTables() ([][]byte, []byte) {
	mulTable := make([][]byte, f.size)
	invTable := make([]byte, f.size)

	for i := 0; i < f.size; i++ {
		mulTable[i] = make([]byte, f.size)
		for j := 0; j < f.size; j++ {
			mulTable[i][j] = f.mulNoTable(byte(i), byte(j))
			if mulTable[i][j] == 1 {
				invTable[i] = byte(j)
			}
		}
	}
	return mulTable, invTable
}
