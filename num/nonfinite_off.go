//go:build readable_nonan

package num

// The readable_nonan build: NaN/±Inf input to the Float and Percent
// constructors is an unchecked precondition.  Non-finite values passed
// anyway produce an unspecified (but still capacity-safe) rendering.
const checkNonFinite = false
