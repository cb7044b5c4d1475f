package generator

import (
	"regexp"
	"strings"
)

var sequentialRun = regexp.MustCompile(`(012|123|234|345|456|567|678|789|890|abc|bcd|cde)`)

// hasRepeatedRun reports whether the password contains the same
// character three or more times in a row. This is the original
// `(.)\1{2,}` pattern spelled out, since Go's RE2 regexp engine has
// no backreferences.
func hasRepeatedRun(password string) bool {
	run := 1
	var prev rune
	for i, r := range password {
		if i > 0 && r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}
	return false
}

// CheckStrength grades a password against the rules the original vault
// enforces for new master passwords: minimum length, all four character
// classes, no long repeats, no trivial sequences. It returns whether
// the password passes and the list of human-readable issues found.
func CheckStrength(password string) (bool, []string) {
	var issues []string

	if len(password) < minLength {
		issues = append(issues, "Must be at least 8 characters long")
	}
	if !strings.ContainsAny(password, lowercase) {
		issues = append(issues, "Must contain lowercase letters")
	}
	if !strings.ContainsAny(password, uppercase) {
		issues = append(issues, "Must contain uppercase letters")
	}
	if !strings.ContainsAny(password, digits) {
		issues = append(issues, "Must contain numbers")
	}
	if !strings.ContainsAny(password, `!@#$%^&*(),.?":{}|<>`) {
		issues = append(issues, "Must contain special characters")
	}
	if hasRepeatedRun(password) {
		issues = append(issues, "Avoid repeated characters")
	}
	if sequentialRun.MatchString(strings.ToLower(password)) {
		issues = append(issues, "Avoid sequential characters")
	}

	return len(issues) == 0, issues
}
