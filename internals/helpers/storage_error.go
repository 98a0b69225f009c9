// file: internals/helpers/storage_error.go
package helper

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// StorageStatus memetakan error store ke status HTTP: kegagalan konektivitas
// (pool habis, DB down, timeout) → 503, sisanya error server biasa → 500.
func StorageStatus(err error) int {
	if isUnreachableErr(err) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// StorageError: versi fiber.NewError dari StorageStatus, untuk service yang
// mengembalikan *fiber.Error dari dalam transaksi.
func StorageError(err error, message string) *fiber.Error {
	return fiber.NewError(StorageStatus(err), message)
}

func isUnreachableErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "bad connection") ||
		strings.Contains(msg, "timeout")
}
