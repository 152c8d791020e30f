package tmpfile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Namer produces a candidate file or directory name. Names should be unique
// with high probability; New retries with a fresh name when a candidate
// already exists.
type Namer func() string

// TimestampNamer is the default Namer. It derives the name from a
// nanosecond-resolution clock reading formatted as hexadecimal,
// "tmp-<hex-nanoseconds>".
//
// This makes collisions unlikely but not impossible: two calls within one
// clock tick, or a coarse platform clock, can produce the same name. New
// compensates by creating exclusively and retrying, but callers that need
// collision-proof names should use UUIDNamer or supply their own Namer.
func TimestampNamer() string {
	return fmt.Sprintf("tmp-%x", time.Now().UnixNano())
}

// UUIDNamer names resources "tmp-<uuid>" using a random (version 4) UUID.
func UUIDNamer() string {
	return "tmp-" + uuid.NewString()
}
