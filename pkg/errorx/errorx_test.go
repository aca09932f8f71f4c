package errorx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewAndError(t *testing.T) {
	err := New(CodeUserExist, "user already exists")
	if err.Code != CodeUserExist {
		t.Fatalf("code = %d, want %d", err.Code, CodeUserExist)
	}
	if err.Error() != "user already exists" {
		t.Fatalf("msg = %q", err.Error())
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDBError, "query user")
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	var ce *CodeError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As failed")
	}
	if ce.Code != CodeDBError {
		t.Fatalf("code = %d, want %d", ce.Code, CodeDBError)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("cause missing from message: %q", err.Error())
	}
}

func TestWrapfFormats(t *testing.T) {
	err := Wrapf(errors.New("timeout"), CodeCacheError, "get key %s", "user_info_U1")
	if got := err.Error(); !strings.HasPrefix(got, "get key user_info_U1") {
		t.Fatalf("msg = %q", got)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeForbidden, "no")); got != CodeForbidden {
		t.Fatalf("GetCode = %d", got)
	}
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Fatalf("GetCode(plain) = %d, want %d", got, CodeServerBusy)
	}
}

func TestGetCodeWrappedDeep(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := fmt.Errorf("lookup: %w", inner)
	if got := GetCode(outer); got != CodeNotFound {
		t.Fatalf("GetCode = %d, want %d", got, CodeNotFound)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(CodeNotFound, "gone")) {
		t.Fatal("expected not-found")
	}
	if !IsNotFound(errors.New("record not found")) {
		t.Fatal("gorm sentinel text not recognized")
	}
	if IsNotFound(New(CodeConflict, "dup")) {
		t.Fatal("conflict reported as not-found")
	}
	if IsNotFound(nil) {
		t.Fatal("nil reported as not-found")
	}
}
