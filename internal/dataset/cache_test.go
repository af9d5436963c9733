package dataset

import (
	"context"
	"errors"
	"testing"
)

func newTestCachedLoader(t *testing.T, f *fakeFetcher) *CachedLoader {
	t.Helper()
	c, err := NewCachedLoader(&Loader{Fetcher: f}, 8)
	if err != nil {
		t.Fatalf("new cached loader: %v", err)
	}
	return c
}

func TestCachedLoader_HitSkipsFetch(t *testing.T) {
	f := &fakeFetcher{text: "a\n1"}
	c := newTestCachedLoader(t, f)

	ctx := context.Background()
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", f.calls)
	}
}

func TestCachedLoader_KeyIncludesFormat(t *testing.T) {
	f := &fakeFetcher{text: `[1]`}
	c := newTestCachedLoader(t, f)

	ctx := context.Background()
	if _, err := c.Load(ctx, "u", FormatJSON); err != nil {
		t.Fatalf("json load: %v", err)
	}
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("csv load: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", f.calls)
	}
}

func TestCachedLoader_EmptyFormatSharesCSVEntry(t *testing.T) {
	f := &fakeFetcher{text: "a\n1"}
	c := newTestCachedLoader(t, f)

	ctx := context.Background()
	if _, err := c.Load(ctx, "u", ""); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", f.calls)
	}
}

func TestCachedLoader_ErrorsAreNotCached(t *testing.T) {
	f := &fakeFetcher{err: errors.New("down")}
	c := newTestCachedLoader(t, f)

	ctx := context.Background()
	if _, err := c.Load(ctx, "u", FormatCSV); err == nil {
		t.Fatal("expected error")
	}
	f.err = nil
	f.text = "a\n1"
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("load after recovery: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", f.calls)
	}
}

func TestCachedLoader_Invalidate(t *testing.T) {
	f := &fakeFetcher{text: "a\n1"}
	c := newTestCachedLoader(t, f)

	ctx := context.Background()
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("load: %v", err)
	}
	c.Invalidate("u", FormatCSV)
	if _, err := c.Load(ctx, "u", FormatCSV); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if f.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", f.calls)
	}
}
