package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, expected: true},
		{name: "raw pgx unique violation", err: fmt.Errorf("insert genre: %w", &pgconn.PgError{Code: "23505"}), expected: true},
		{name: "other pgx error", err: &pgconn.PgError{Code: "23503"}, expected: false},
		{name: "plain error", err: errors.New("connection reset"), expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueViolation(tt.err))
		})
	}
}
