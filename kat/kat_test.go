package kat

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/mirath-rx/mirath-go/mirath"
	"github.com/mirath-rx/mirath-go/params"
)

// buildRecord runs the full keygen/sign pipeline from a fixed seed and
// packages the result as a Record, standing in for a vector pulled from an
// official .rsp file — there isn't one for a from-scratch scheme, so this
// harness is authoritative over itself: Record is only ever trusted to
// round-trip its own output.
func buildRecord(t *testing.T, count int, tag params.Tag, seed, message []byte) Record {
	t.Helper()
	pk, sk, err := mirath.KeygenFromSeed(tag, seed)
	if err != nil {
		t.Fatalf("KeygenFromSeed: %v", err)
	}
	s, err := params.Lookup(tag)
	if err != nil {
		t.Fatalf("params.Lookup: %v", err)
	}
	sig, signedPK, err := mirath.Sign(sk, message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !bytes.Equal(signedPK.Bytes(), pk.Bytes()) {
		t.Fatal("Sign returned a public key inconsistent with Keygen's")
	}
	return Record{
		Count:        count,
		Seed:         seed,
		MessageLen:   len(message),
		Message:      message,
		PK:           pk.Bytes(),
		SK:           sk.Bytes(),
		SignatureLen: len(sig.Bytes(s)),
		Signature:    sig.Bytes(s),
	}
}

func TestKeygenFromSeedIsDeterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 16)
	pk1, sk1, err := mirath.KeygenFromSeed(params.Tag(0x01), seed)
	if err != nil {
		t.Fatalf("KeygenFromSeed: %v", err)
	}
	pk2, sk2, err := mirath.KeygenFromSeed(params.Tag(0x01), seed)
	if err != nil {
		t.Fatalf("KeygenFromSeed: %v", err)
	}
	if !bytes.Equal(pk1.Bytes(), pk2.Bytes()) {
		t.Fatal("same seed_sec produced different public keys")
	}
	if !bytes.Equal(sk1.Bytes(), sk2.Bytes()) {
		t.Fatal("same seed_sec produced different secret keys")
	}
}

func TestRecordRoundTripsThroughRspFormat(t *testing.T) {
	tag := params.Tag(0x01)
	seed := bytes.Repeat([]byte{0x07}, 16)
	record := buildRecord(t, 0, tag, seed, []byte("consultation du 2026-08-03: amoxicilline 500mg"))

	doc := EncodeFile("MIRATH-RX", []Record{record})
	parsed, err := parseScanner(bufio.NewScanner(strings.NewReader(doc)))
	if err != nil {
		t.Fatalf("parseScanner: %v", err)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 record, got %d", len(parsed))
	}

	got := parsed[0]
	if got.Count != record.Count {
		t.Errorf("count: got %d, want %d", got.Count, record.Count)
	}
	if !bytes.Equal(got.Seed, record.Seed) {
		t.Error("seed mismatch after round-trip")
	}
	if !bytes.Equal(got.Message, record.Message) {
		t.Error("message mismatch after round-trip")
	}
	if !bytes.Equal(got.PK, record.PK) {
		t.Error("pk mismatch after round-trip")
	}
	if !bytes.Equal(got.SK, record.SK) {
		t.Error("sk mismatch after round-trip")
	}
	if !bytes.Equal(got.Signature, record.Signature) {
		t.Error("signature mismatch after round-trip")
	}

	s, err := params.Lookup(tag)
	if err != nil {
		t.Fatalf("params.Lookup: %v", err)
	}
	pk, err := mirath.DecodePublicKey(s, got.PK)
	if err != nil {
		t.Fatalf("DecodePublicKey: %v", err)
	}
	sig, err := mirath.DecodeSignature(s, got.Signature)
	if err != nil {
		t.Fatalf("DecodeSignature: %v", err)
	}
	if err := mirath.Verify(pk, got.Message, sig); err != nil {
		t.Fatalf("Verify on round-tripped record: %v", err)
	}
}

func TestDifferentSeedsProduceDifferentRecords(t *testing.T) {
	tag := params.Tag(0x01)
	msg := []byte("ordonnance test")
	r1 := buildRecord(t, 0, tag, bytes.Repeat([]byte{0x01}, 16), msg)
	r2 := buildRecord(t, 1, tag, bytes.Repeat([]byte{0x02}, 16), msg)
	if bytes.Equal(r1.PK, r2.PK) {
		t.Fatal("distinct seeds produced identical public keys")
	}
	if bytes.Equal(r1.SK, r2.SK) {
		t.Fatal("distinct seeds produced identical secret keys")
	}
}
