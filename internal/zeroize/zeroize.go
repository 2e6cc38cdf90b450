// Package zeroize overwrites secret byte slices before they are released,
// per spec.md §5/§9's secret-material lifecycle requirement. The naming
// follows the Zeroize method convention used throughout
// jeremyhahn-go-frostdkg and moatus-FROST-Golang's threshold-signature key
// material.
package zeroize

// Bytes overwrites b with zeros in place. Safe to call on a nil or empty
// slice.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// All overwrites every slice passed to it.
func All(bs ...[]byte) {
	for _, b := range bs {
		Bytes(b)
	}
}
