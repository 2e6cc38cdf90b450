package xof

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// AESCTRExpand stretches seed into length pseudorandom bytes using AES-128
// in CTR mode, exactly as AU-HC-mayo-go's mayo/utility.go aes128ctr and
// rand/random.go AES128CTR do for the public matrix family expansion — used
// here for the seed tree's high-volume per-node expansions rather than
// SHAKE256, matching the teacher's choice of AES-CTR over SHAKE for bulk
// expansion. The AES key and CTR nonce are themselves derived from seed via
// HKDF (golang.org/x/crypto/hkdf, following other_examples/matrixgl's
// msgToMatrix use of the same construction) with tag as HKDF info, so two
// call sites expanding the same seed under different tags never share a
// keystream.
func AESCTRExpand(seed []byte, tag byte, length int) []byte {
	kdf := hkdf.New(sha256.New, seed, nil, []byte{tag})

	var key, nonce [16]byte
	if _, err := io.ReadFull(kdf, key[:]); err != nil {
		panic(err)
	}
	if _, err := io.ReadFull(kdf, nonce[:]); err != nil {
		panic(err)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	ctr := cipher.NewCTR(block, nonce[:])
	dst := make([]byte, length)
	ctr.XORKeyStream(dst, dst)
	return dst
}
