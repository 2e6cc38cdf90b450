// Package prescription is the medical-prescription data model spec.md
// §1/§4.E's "physician signs, pharmacist verifies" workflow signs over,
// grounded on original_source/ordonnance.py's Ordonnance class — renamed
// to English field names and reshaped into a Go value type, since the
// Python prototype's to_signable_message()/to_dict() pair is exactly what
// canon.Canonicalize below replaces with a canonical byte encoding instead
// of a human-readable text block.
package prescription

import "fmt"

// Medication is one line item of a prescription (original_source/
// ordonnance.py's per-entry médicament dict: nom/dosage/posologie). JSON
// tags follow the Python prototype's to_dict() key names so a JSON file
// exported by either implementation reads into the other unchanged.
type Medication struct {
	Name     string `json:"nom"`
	Dosage   string `json:"dosage"`
	Schedule string `json:"posologie"`
}

// Prescription mirrors original_source/ordonnance.py's Ordonnance: patient
// and physician identity, the medication list, and the prescription date.
// The signature itself is never a field of this struct — it's produced
// over the canonical encoding of everything below, and travels alongside
// it, not inside it.
type Prescription struct {
	PatientLastName  string `json:"patient_nom"`
	PatientFirstName string `json:"patient_prenom"`
	PatientID        string `json:"patient_id"`

	PhysicianLastName  string `json:"medecin_nom"`
	PhysicianFirstName string `json:"medecin_prenom"`
	PhysicianID        string `json:"medecin_id"`

	Medications []Medication `json:"medicaments"`

	Date string `json:"date_prescription"` // YYYY-MM-DD, matching ordonnance.py's date_prescription format
}

// Validate checks the structural non-goals a signer/verifier both rely on:
// every identity field is non-empty and at least one medication is
// present. Canonicalization Non-goals (spec.md §1) exclude clinical
// validation (dosage sanity, drug interactions); this only guards against
// an empty or malformed record being signed.
func (p *Prescription) Validate() error {
	if p.PatientLastName == "" || p.PatientFirstName == "" || p.PatientID == "" {
		return fmt.Errorf("prescription: missing patient identity")
	}
	if p.PhysicianLastName == "" || p.PhysicianFirstName == "" || p.PhysicianID == "" {
		return fmt.Errorf("prescription: missing physician identity")
	}
	if len(p.Medications) == 0 {
		return fmt.Errorf("prescription: at least one medication is required")
	}
	for i, m := range p.Medications {
		if m.Name == "" {
			return fmt.Errorf("prescription: medication %d missing a name", i)
		}
	}
	if p.Date == "" {
		return fmt.Errorf("prescription: missing date")
	}
	return nil
}
