package repository

import (
	"errors"
	"testing"
)

func TestTransactionWithoutHandleRunsInline(t *testing.T) {
	repos := &Repositories{}

	called := false
	err := repos.Transaction(func(tx *Repositories) error {
		called = true
		if tx != repos {
			t.Fatal("inline transaction must reuse the same repositories")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("err=%v called=%v", err, called)
	}

	want := errors.New("boom")
	if err := repos.Transaction(func(*Repositories) error { return want }); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
