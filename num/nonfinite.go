//go:build !readable_nonan

package num

// checkNonFinite gates the NaN/±Inf classification in the Float and
// Percent constructors.  Build with -tags readable_nonan to compile the
// check out, at which point finite input becomes a caller precondition.
const checkNonFinite = true
