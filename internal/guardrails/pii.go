package guardrails

import "regexp"

// piiPatterns covers structured PII shapes: SSNs, bare 10-digit phone
// numbers, ZIP codes, email addresses and payment-card digit runs.
var piiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\b\d{5}(-\d{4})?\b`),
	regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w{2,4}\b`),
	regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`),
}

// DetectPII reports whether the input carries structured personal data.
func DetectPII(input string) bool {
	for _, p := range piiPatterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}
