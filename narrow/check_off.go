//go:build handle_nocheck

package narrow

// Checked reports whether Cast verifies the round trip.
const Checked = false
