package main

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// TestWatcherReportsSheetChange 测试 sheet 资源变更会产生事件
func TestWatcherReportsSheetChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "walker.yaml")
	if err := os.WriteFile(path, []byte("image: walker.png"), 0o644); err != nil {
		t.Fatalf("Failed to write sheet file: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("Expected event for %s, got %s", path, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change event for the sheet file")
	}
}

// TestWatcherCloseDuringEvents 测试文件事件与 Close 并发时不会 panic
// Events 由 run 协程负责关闭，Close 期间到达的事件不得触发向已关闭通道的发送。
func TestWatcherCloseDuringEvents(t *testing.T) {
	for i := 0; i < 50; i++ {
		dir := t.TempDir()
		w, err := NewWatcher(dir)
		if err != nil {
			t.Fatalf("NewWatcher failed: %v", err)
		}

		stop := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := filepath.Join(dir, "sheet.yaml")
			for {
				select {
				case <-stop:
					return
				default:
					_ = os.WriteFile(path, []byte("image: x.png"), 0o644)
				}
			}
		}()

		time.Sleep(time.Millisecond)
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		close(stop)
		wg.Wait()

		// run 退出后 Events 被关闭，排空必须能终止
		for range w.Events {
		}
	}
}

// TestWatcherCloseIdempotent 测试重复 Close 安全
func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("First Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}
}

// TestIsSheetAsset 测试资源扩展名过滤
func TestIsSheetAsset(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"a/walker.yaml", true},
		{"a/walker.YML", true},
		{"a/walker.png", true},
		{"a/walker.png.swp", false},
		{"a/notes.txt", false},
	}
	for _, c := range cases {
		if got := isSheetAsset(c.path); got != c.want {
			t.Errorf("isSheetAsset(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
