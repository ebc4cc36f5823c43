package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "not found", err: NotFound("order not found"), expected: KindNotFound},
		{name: "conflict", err: Conflict("order already exists"), expected: KindConflict},
		{name: "invalid state", err: InvalidState("order is not pending"), expected: KindInvalidState},
		{name: "validation", err: Validation("amount below minimum"), expected: KindValidation},
		{name: "precondition", err: Precondition("no bank account on file"), expected: KindPrecondition},
		{name: "wrapped keeps kind", err: fmt.Errorf("create refund: %w", InvalidState("not refundable")), expected: KindInvalidState},
		{name: "plain error is unknown", err: errors.New("db error"), expected: KindUnknown},
		{name: "nil is unknown", err: nil, expected: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: NotFound("order not found"), expected: http.StatusNotFound},
		{name: "conflict", err: Conflict("order already exists"), expected: http.StatusConflict},
		{name: "invalid state maps to conflict", err: InvalidState("order is not pending"), expected: http.StatusConflict},
		{name: "validation", err: Validation("amount below minimum"), expected: http.StatusBadRequest},
		{name: "precondition", err: Precondition("no bank account on file"), expected: http.StatusPreconditionFailed},
		{name: "wrapped keeps status", err: fmt.Errorf("settle: %w", Conflict("activity already settled")), expected: http.StatusConflict},
		{name: "plain error is internal", err: errors.New("db error"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(KindValidation, "minimum withdrawal is %.2f", 100.0)
	assert.Equal(t, "minimum withdrawal is 100.00", err.Error())
	assert.Equal(t, KindValidation, KindOf(err))
}
