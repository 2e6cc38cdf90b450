package canon

import (
	"testing"

	"github.com/mirath-rx/mirath-go/prescription"
)

func sample() *prescription.Prescription {
	return &prescription.Prescription{
		PatientLastName: "Dupont", PatientFirstName: "Marie", PatientID: "P-001",
		PhysicianLastName: "Martin", PhysicianFirstName: "Claire", PhysicianID: "D-042",
		Medications: []prescription.Medication{
			{Name: "Amoxicilline", Dosage: "500mg", Schedule: "3x/day for 7 days"},
			{Name: "Paracetamol", Dosage: "1g", Schedule: "as needed"},
		},
		Date: "2026-08-03",
	}
}

func TestCanonicalizeDeterministic(t *testing.T) {
	p := sample()
	a := Canonicalize(p)
	b := Canonicalize(p)
	if string(a) != string(b) {
		t.Fatal("Canonicalize is not deterministic for the same input")
	}
}

func TestCanonicalizeOrderIndependent(t *testing.T) {
	p1 := sample()
	p2 := sample()
	p2.Medications[0], p2.Medications[1] = p2.Medications[1], p2.Medications[0]

	if string(Canonicalize(p1)) != string(Canonicalize(p2)) {
		t.Fatal("expected medication order to not affect canonical encoding")
	}
}

// TestCanonicalizeNFCNormalization spells the same name two ways: one
// using the precomposed e-acute code point (U+00E9), the other using
// plain "e" followed by a combining acute accent (U+0301). NFC
// normalization must fold both to the same canonical bytes.
func TestCanonicalizeNFCNormalization(t *testing.T) {
	precomposed := sample()
	precomposed.PatientLastName = "Cr" + string(rune(0x00e9)) + "pin"

	decomposed := sample()
	decomposed.PatientLastName = "Cre" + string(rune(0x0301)) + "pin"

	if string(Canonicalize(precomposed)) != string(Canonicalize(decomposed)) {
		t.Fatal("expected precomposed and decomposed forms to canonicalize identically")
	}
}

func TestCanonicalizeDetectsFieldChange(t *testing.T) {
	p1 := sample()
	p2 := sample()
	p2.Medications[0].Dosage = "250mg"

	if string(Canonicalize(p1)) == string(Canonicalize(p2)) {
		t.Fatal("expected a dosage change to change the canonical encoding")
	}
}
