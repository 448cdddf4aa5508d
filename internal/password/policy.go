package password

import "regexp"

// Result of a local, synchronous validation pass.
type Result struct {
	OK      bool
	Message string
}

func Valid() Result {
	return Result{OK: true}
}

func Invalid(message string) Result {
	return Result{Message: message}
}

type Rule struct {
	Pattern *regexp.Regexp
	Message string
}

// Policy is a named, ordered rule set with first-failure-wins semantics.
// The confirmation match is always the last check. Both flows point at an
// explicit policy so the registration/reset divergence stays a deliberate
// choice rather than an accident.
type Policy struct {
	Name            string
	Rules           []Rule
	MismatchMessage string
}

func (p Policy) Validate(password string, confirmation string) Result {
	for _, rule := range p.Rules {
		if !rule.Pattern.MatchString(password) {
			return Invalid(rule.Message)
		}
	}
	if password != confirmation {
		return Invalid(p.MismatchMessage)
	}
	return Valid()
}

// ResetPolicy is what the reset screen enforces: length and match only.
var ResetPolicy = Policy{
	Name: "reset",
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`.{8,}`), Message: "too short"},
	},
	MismatchMessage: "mismatch",
}

// RegistrationPolicy adds the composition checks used on sign-up.
var RegistrationPolicy = Policy{
	Name: "registration",
	Rules: []Rule{
		{Pattern: regexp.MustCompile(`.{8,}`), Message: "password needs at least 8 characters"},
		{Pattern: regexp.MustCompile(`[A-Z]`), Message: "password needs an uppercase letter"},
		{Pattern: regexp.MustCompile(`[a-z]`), Message: "password needs a lowercase letter"},
		{Pattern: regexp.MustCompile(`[0-9]`), Message: "password needs a digit"},
		{Pattern: regexp.MustCompile(`[^A-Za-z0-9]`), Message: "password needs a special character"},
	},
	MismatchMessage: "passwords do not match",
}
