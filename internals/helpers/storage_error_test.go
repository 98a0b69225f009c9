// file: internals/helpers/storage_error_test.go
package helper

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStorageStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, fiber.StatusInternalServerError},
		{"bad conn", driver.ErrBadConn, fiber.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, fiber.StatusServiceUnavailable},
		{"connection refused", errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"), fiber.StatusServiceUnavailable},
		{"pool timeout", errors.New("timeout: context already done"), fiber.StatusServiceUnavailable},
		{"error sql biasa", errors.New(`ERROR: column "x" does not exist (SQLSTATE 42703)`), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StorageStatus(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	fe := StorageError(driver.ErrBadConn, "Gagal membaca data")
	assert.Equal(t, fiber.StatusServiceUnavailable, fe.Code)
	assert.Equal(t, "Gagal membaca data", fe.Message)
}
