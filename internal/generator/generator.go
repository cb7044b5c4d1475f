// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package generator produces random passwords and grades password
// strength. All randomness comes from the OS CSPRNG; math/rand has no
// place near secrets.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// DefaultLength is the generated password length when the caller does
// not ask for one.
const DefaultLength = 16

// minLength is the floor applied to any requested length.
const minLength = 8

const (
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	digits    = "0123456789"
	symbols   = "!@#$%^&*()_+-=[]{}|;':,./<>?"
)

// Options selects the character classes a generated password draws
// from. Every enabled class is guaranteed at least one character.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions enables every character class at DefaultLength.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generate returns a random password honoring opts. Lengths below the
// minimum are raised to it; when no class is enabled, letters and
// digits are used. Returns an error only if the CSPRNG fails.
func Generate(opts Options) (string, error) {
	length := opts.Length
	if length < minLength {
		length = minLength
	}

	var pool strings.Builder
	var guaranteed []byte

	classes := []struct {
		enabled bool
		chars   string
	}{
		{opts.Uppercase, uppercase},
		{opts.Lowercase, lowercase},
		{opts.Digits, digits},
		{opts.Symbols, symbols},
	}
	for _, c := range classes {
		if !c.enabled {
			continue
		}
		pool.WriteString(c.chars)
		ch, err := pick(c.chars)
		if err != nil {
			return "", err
		}
		guaranteed = append(guaranteed, ch)
	}

	if pool.Len() == 0 {
		pool.WriteString(uppercase + lowercase + digits)
		for _, chars := range []string{uppercase, lowercase, digits} {
			ch, err := pick(chars)
			if err != nil {
				return "", err
			}
			guaranteed = append(guaranteed, ch)
		}
	}

	chars := pool.String()
	out := make([]byte, 0, length)
	out = append(out, guaranteed...)
	for len(out) < length {
		ch, err := pick(chars)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// pick returns one uniformly random character from chars. big.Int keeps
// the draw unbiased; a plain modulo would skew toward low indexes.
func pick(chars string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
	if err != nil {
		return 0, fmt.Errorf("random index: %w", err)
	}
	return chars[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle with CSPRNG indexes so the
// guaranteed class characters are not clustered at the front.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("random index: %w", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
