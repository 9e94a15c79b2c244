package util_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/spec-kit/atm-service/internal/repository"
	"github.com/spec-kit/atm-service/pkg/util"
)

func TestToDomainError_NotFound(t *testing.T) {
	mapped := util.ToDomainError(repository.ErrNotFound)
	if mapped.HTTPStatus != http.StatusNotFound || mapped.Code != "NOT_FOUND" {
		t.Fatalf("got %s / %d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainError_DatabaseError(t *testing.T) {
	dbErr := &repository.DatabaseError{Op: "account get", Err: errors.New("connection refused")}

	mapped := util.ToDomainError(dbErr)
	if mapped.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("infrastructure failure mapped to %d, want 503", mapped.HTTPStatus)
	}
	if mapped.Code != "DATABASE_ERROR" {
		t.Errorf("code %s, want DATABASE_ERROR", mapped.Code)
	}
	if !errors.Is(mapped, dbErr) {
		t.Error("mapped error does not wrap the cause")
	}
}

func TestToDomainError_PassesDomainErrorsThrough(t *testing.T) {
	original := util.NewForbidden("no")

	mapped := util.ToDomainError(original)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("got %s / %d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainError_UnknownError(t *testing.T) {
	mapped := util.ToDomainError(errors.New("boom"))
	if mapped.HTTPStatus != http.StatusInternalServerError || mapped.Code != "INTERNAL_ERROR" {
		t.Fatalf("got %s / %d", mapped.Code, mapped.HTTPStatus)
	}
}
