package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var employeeCodeRegex = regexp.MustCompile(`^[A-Z0-9-]{3,16}$`)

// ValidateEmployeeCode validates the format of an HR employee code.
// Codes are uppercase alphanumerics with hyphens, e.g. "EMP-0042".
func ValidateEmployeeCode(code string) error {
	if !employeeCodeRegex.MatchString(code) {
		return fmt.Errorf("employee code must be 3-16 characters and contain only uppercase letters, numbers, and hyphens")
	}

	if strings.HasPrefix(code, "-") || strings.HasSuffix(code, "-") {
		return fmt.Errorf("employee code cannot start or end with a hyphen")
	}

	return nil
}
