package security

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// symbolSet matches the punctuation the signup form counts as a special
// character.
const symbolSet = `!@#$%^&*(),.?":{}|<>`

var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

var strengthColors = []string{"#ef4444", "#f97316", "#eab308", "#22c55e", "#16a34a"}

// Strength describes how a candidate password scored against the five signup
// criteria. Feedback lists the criteria that were not met, in display order.
type Strength struct {
	Score    int
	Feedback []string
}

// CheckStrength scores a candidate password in [0,5]: one point each for
// length, uppercase, lowercase, digit, and symbol. It is advisory UI feedback,
// not an authentication control.
func CheckStrength(password string) Strength {
	var s Strength

	if utf8.RuneCountInString(password) >= 8 {
		s.Score++
	} else {
		s.Feedback = append(s.Feedback, "At least 8 characters")
	}

	if strings.ContainsFunc(password, unicode.IsUpper) {
		s.Score++
	} else {
		s.Feedback = append(s.Feedback, "One uppercase letter")
	}

	if strings.ContainsFunc(password, unicode.IsLower) {
		s.Score++
	} else {
		s.Feedback = append(s.Feedback, "One lowercase letter")
	}

	if strings.ContainsFunc(password, unicode.IsDigit) {
		s.Score++
	} else {
		s.Feedback = append(s.Feedback, "One number")
	}

	if strings.ContainsAny(password, symbolSet) {
		s.Score++
	} else {
		s.Feedback = append(s.Feedback, "One special character")
	}

	return s
}

// Meets reports whether the score clears the configured minimum.
func (s Strength) Meets(minScore int) bool {
	return s.Score >= minScore
}

// Label maps the score onto the UI wording; 4 and 5 both read "Strong".
func (s Strength) Label() string {
	return strengthLabels[clampInt(s.Score, 0, len(strengthLabels)-1)]
}

// Color returns the hex color the strength bar renders at this score.
func (s Strength) Color() string {
	return strengthColors[clampInt(s.Score, 0, len(strengthColors)-1)]
}
