package uid

import (
	"github.com/google/uuid"
)

// Uid returns a random v4 UUID in its canonical 36-character form. It is used
// to tag requests which arrive without an X-Request-ID header.
func Uid() string {
	return uuid.NewString()
}
