// Command mirathctl is the physician/pharmacist-facing entry point: a
// physician runs -mode=sign to sign a prescription, a pharmacist runs
// -mode=verify to check it. The flat, println-driven CLI shape follows
// AU-HC-mayo-go's main.go (InitMayo -> CompactKeyGen -> Sign -> Verify,
// reporting each step to stdout) generalized from a fixed demo flow to a
// file-driven keygen/sign/verify tool, since spec.md §1's Non-goals
// exclude an interactive UI — this is the batch CLI that stands in for
// original_source/medecin.py, pharmacie.py, and interface2Cl.py's
// interactive menu.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mirath-rx/mirath-go/canon"
	"github.com/mirath-rx/mirath-go/mirath"
	"github.com/mirath-rx/mirath-go/params"
	"github.com/mirath-rx/mirath-go/prescription"
)

func main() {
	args := parseArguments()

	var err error
	switch args.Mode {
	case "keygen":
		err = runKeygen(args)
	case "sign":
		err = runSign(args)
	case "verify":
		err = runVerify(args)
	default:
		fmt.Fprintln(os.Stderr, "mirathctl: -mode must be one of keygen, sign, verify")
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "mirathctl: %v\n", err)
		os.Exit(1)
	}
}

func runKeygen(args *arguments) error {
	pk, sk, err := mirath.Keygen(params.Tag(args.ParamsTag))
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	if err := os.WriteFile(args.PublicKey, pk.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(args.SecretKey, sk.Bytes(), 0o600); err != nil {
		return err
	}
	fmt.Printf("keygen: wrote %s and %s (tag 0x%02x)\n", args.PublicKey, args.SecretKey, args.ParamsTag)
	return nil
}

func runSign(args *arguments) error {
	s, err := params.Lookup(params.Tag(args.ParamsTag))
	if err != nil {
		return err
	}
	skRaw, err := os.ReadFile(args.SecretKey)
	if err != nil {
		return err
	}
	sk, err := mirath.DecodeSecretKey(s, skRaw)
	if err != nil {
		return err
	}

	message, err := loadMessage(args)
	if err != nil {
		return err
	}

	sig, pk, err := mirath.Sign(sk, message)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	if err := os.WriteFile(args.Signature, sig.Bytes(s), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(args.PublicKey, pk.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("sign: wrote %s (%d bytes)\n", args.Signature, s.SigBytes)
	return nil
}

func runVerify(args *arguments) error {
	s, err := params.Lookup(params.Tag(args.ParamsTag))
	if err != nil {
		return err
	}
	pkRaw, err := os.ReadFile(args.PublicKey)
	if err != nil {
		return err
	}
	pk, err := mirath.DecodePublicKey(s, pkRaw)
	if err != nil {
		return err
	}
	sigRaw, err := os.ReadFile(args.Signature)
	if err != nil {
		return err
	}
	sig, err := mirath.DecodeSignature(s, sigRaw)
	if err != nil {
		return err
	}

	message, err := loadMessage(args)
	if err != nil {
		return err
	}

	if err := mirath.Verify(pk, message, sig); err != nil {
		fmt.Println("verify: REJECTED")
		return err
	}
	fmt.Println("verify: ACCEPTED")
	return nil
}

// loadMessage returns the canonical byte string to sign or verify: either
// a raw message file, or, when -prescription is set, a JSON-encoded
// prescription.Prescription canonicalized via canon.Canonicalize.
func loadMessage(args *arguments) ([]byte, error) {
	if args.Prescribed != "" {
		raw, err := os.ReadFile(args.Prescribed)
		if err != nil {
			return nil, err
		}
		var p prescription.Prescription
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("prescription: %w", err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return canon.Canonicalize(&p), nil
	}
	if args.Message == "" {
		return nil, fmt.Errorf("one of -msg or -prescription is required")
	}
	return os.ReadFile(args.Message)
}
