package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// LuhnComplete appends the check digit that makes base a valid Luhn number.
// base must be digits only.
func LuhnComplete(base string) string {
	for d := byte('0'); d <= '9'; d++ {
		n := base + string(d)
		if goluhn.Validate(n) == nil {
			return n
		}
	}
	return base + "0"
}
