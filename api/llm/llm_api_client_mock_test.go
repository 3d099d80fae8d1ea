package llm

import (
	"context"
	"testing"
)

func TestLLMMock_ReplaysScriptInOrder(t *testing.T) {
	// Arrange
	mock := NewLLMApiClientMock("first", "second")
	mock.Enqueue("third")

	// Act + Assert
	for i, want := range []string{"first", "second", "third"} {
		got, err := mock.Complete(context.Background(), "system", "user", 100, 0)
		if err != nil {
			t.Fatalf("call %d: expected no error, got %v", i, err)
		}
		if got != want {
			t.Errorf("call %d: expected %q, got %q", i, want, got)
		}
	}

	if mock.CallCount() != 3 {
		t.Errorf("expected 3 recorded calls, got %d", mock.CallCount())
	}
	if mock.Call(1) != "user" {
		t.Errorf("expected recorded user content, got %q", mock.Call(1))
	}
}

func TestLLMMock_ExhaustedScriptFails(t *testing.T) {
	// Arrange
	mock := NewLLMApiClientMock("only one")

	// Act
	mock.Complete(context.Background(), "system", "user", 100, 0)
	_, err := mock.Complete(context.Background(), "system", "user", 100, 0)

	// Assert
	if err == nil {
		t.Fatal("expected an error once the script is exhausted")
	}
}
