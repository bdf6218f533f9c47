package storage

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Storage faults are handled by operation category, not per call site:
// read and delete paths degrade to a benign zero result (empty list,
// absent record, nothing deleted), while write paths surface the fault
// to the caller. Both helpers log, so a degraded result is never
// silent. Keeping the policy here makes the asymmetry auditable and
// easy to change in one place.

// Degrade records a storage fault that the caller converts into a zero
// result instead of an error.
func Degrade(logger *log.Entry, op string, err error) {
	logger.WithError(err).WithField("op", op).Error("storage fault, degrading to empty result")
}

// Propagate records a storage fault the caller must see and wraps it
// with the failing operation.
func Propagate(logger *log.Entry, op string, err error) error {
	logger.WithError(err).WithField("op", op).Error("storage fault")
	return fmt.Errorf("%s: %w", op, err)
}
