package prescription

import "testing"

func valid() *Prescription {
	return &Prescription{
		PatientLastName: "Dupont", PatientFirstName: "Marie", PatientID: "P-001",
		PhysicianLastName: "Martin", PhysicianFirstName: "Claire", PhysicianID: "D-042",
		Medications: []Medication{{Name: "Amoxicilline", Dosage: "500mg", Schedule: "3x/day"}},
		Date:        "2026-08-03",
	}
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Fatalf("expected a complete record to validate, got %v", err)
	}
}

func TestValidateRejectsMissingMedications(t *testing.T) {
	p := valid()
	p.Medications = nil
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for a prescription with no medications")
	}
}

func TestValidateRejectsMissingPatientID(t *testing.T) {
	p := valid()
	p.PatientID = ""
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for a missing patient id")
	}
}
