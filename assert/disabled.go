//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// Assertions are disabled in this build.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Assertions are disabled in this build.
func False(value bool, args ...any) {
	// Intentionally left blank
}
