// Package canon canonicalizes a prescription.Prescription into the
// deterministic byte string mirath.Sign/mirath.Verify operate over
// (spec.md §4.E). Two prescriptions with the same fields that differ only in
// Unicode normalization form or in medication order canonicalize to the
// same bytes, since the signature binds to this encoding rather than to any
// particular in-memory representation. Whitespace is not normalized.
package canon

import (
	"encoding/binary"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/mirath-rx/mirath-go/prescription"
)

// header prefixes every canonical encoding, versioning the record format
// (spec.md §4.E).
const header = "MIRATH-RX-v1\x00"

// Field identifiers for the fixed scalar fields. Medication line items
// carry their own nested field IDs, id'd separately below.
const (
	fieldPatientLastName  byte = 0x01
	fieldPatientFirstName byte = 0x02
	fieldPatientID        byte = 0x03
	fieldPhysicianLast    byte = 0x04
	fieldPhysicianFirst   byte = 0x05
	fieldPhysicianID      byte = 0x06
	fieldDate             byte = 0x07
	fieldMedicationCount  byte = 0x08
	fieldMedication       byte = 0x09 // one record per medication, sub-encoded below

	medFieldName     byte = 0x01
	medFieldDosage   byte = 0x02
	medFieldSchedule byte = 0x03
)

// normalize applies Unicode NFC normalization so that, e.g., an
// e-with-acute-accent typed as one precomposed code point or as "e" plus a
// combining accent always canonicalizes identically (spec.md §4.E).
func normalize(s string) string {
	return norm.NFC.String(s)
}

// record appends one field_id(1) || len(4) || utf8_bytes entry. The length
// prefix is little-endian, matching spec.md §6's byte-layout convention.
func record(out []byte, id byte, value string) []byte {
	v := []byte(normalize(value))
	out = append(out, id)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(v)))
	out = append(out, lenBuf[:]...)
	out = append(out, v...)
	return out
}

// encodeMedication canonically encodes one medication's three sub-fields
// in fixed field-id order (spec.md §4.E's "lexicographic key-sort for
// ambiguous ordering" applies within a record's own fields, which here are
// simply fixed rather than ambiguous).
func encodeMedication(m prescription.Medication) []byte {
	var out []byte
	out = record(out, medFieldName, m.Name)
	out = record(out, medFieldDosage, m.Dosage)
	out = record(out, medFieldSchedule, m.Schedule)
	return out
}

// Canonicalize produces the deterministic byte string a signature binds
// to. Medications are sorted by their canonical encoding before being
// concatenated, so that two prescriptions differing only in the order
// medications were entered (not their content) canonicalize identically
// (spec.md §4.E's ambiguous-ordering rule).
func Canonicalize(p *prescription.Prescription) []byte {
	out := []byte(header)
	out = record(out, fieldPatientLastName, p.PatientLastName)
	out = record(out, fieldPatientFirstName, p.PatientFirstName)
	out = record(out, fieldPatientID, p.PatientID)
	out = record(out, fieldPhysicianLast, p.PhysicianLastName)
	out = record(out, fieldPhysicianFirst, p.PhysicianFirstName)
	out = record(out, fieldPhysicianID, p.PhysicianID)
	out = record(out, fieldDate, p.Date)

	medRecords := make([][]byte, len(p.Medications))
	for i, m := range p.Medications {
		medRecords[i] = encodeMedication(m)
	}
	sort.Slice(medRecords, func(i, j int) bool {
		return string(medRecords[i]) < string(medRecords[j])
	})

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(medRecords)))
	out = append(out, fieldMedicationCount)
	out = append(out, countBuf[:]...)

	for _, mr := range medRecords {
		out = append(out, fieldMedication)
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(mr)))
		out = append(out, lenBuf[:]...)
		out = append(out, mr...)
	}

	return out
}
