package logctx

import (
	"context"
	"testing"
)

func TestCtxTagStack(t *testing.T) {
	ctx := context.Background()

	if tags := GetTagList(ctx); len(tags) != 0 {
		t.Fatalf("expected empty tag list on fresh context, got %v", tags)
	}

	ctx = AppendCtxTag(ctx, "Client")
	child := AppendCtxTag(ctx, "Worker")

	if tags := GetTagList(child); len(tags) != 2 || tags[0] != "Client" || tags[1] != "Worker" {
		t.Fatalf("expected [Client Worker], got %v", GetTagList(child))
	}

	// Parent context must be untouched by the child's append
	if tags := GetTagList(ctx); len(tags) != 1 || tags[0] != "Client" {
		t.Fatalf("expected parent tags [Client], got %v", tags)
	}

	popped := RemoveLastCtxTag(child)
	if tags := GetTagList(popped); len(tags) != 1 || tags[0] != "Client" {
		t.Fatalf("expected [Client] after pop, got %v", tags)
	}

	// Child stack survives the pop on its sibling
	if tags := GetTagList(child); len(tags) != 2 {
		t.Fatalf("expected child tags unchanged, got %v", tags)
	}
}

func TestRemoveLastCtxTagOnEmptyStack(t *testing.T) {
	ctx := RemoveLastCtxTag(context.Background())
	if tags := GetTagList(ctx); len(tags) != 0 {
		t.Fatalf("expected empty tag list, got %v", tags)
	}
}

func TestOverwriteCtxTag(t *testing.T) {
	ctx := AppendCtxTag(context.Background(), "Old")
	ctx = OverwriteCtxTag(ctx, []string{"Client", "Scaler"})

	if tags := GetTagList(ctx); len(tags) != 2 || tags[0] != "Client" || tags[1] != "Scaler" {
		t.Fatalf("expected [Client Scaler], got %v", tags)
	}
}
