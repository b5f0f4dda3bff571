package multipart

import (
	"strings"

	"github.com/google/uuid"
)

// boundaryAttempts bounds the collision-scan redraw loop. With 128-bit
// random tokens a single redraw is already vanishingly unlikely.
const boundaryAttempts = 8

// newBoundary generates a multipart boundary token: a 128-bit random value,
// hex-encoded, with the conventional dash prefix.
func newBoundary() string {
	u := uuid.New()
	return "----" + strings.ReplaceAll(u.String(), "-", "")
}
