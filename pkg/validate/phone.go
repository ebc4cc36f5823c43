package validate

import "regexp"

var phoneRe = regexp.MustCompile(`^1[3-9]\d{9}$`)

// IsPhone checks a mainland mobile number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}
