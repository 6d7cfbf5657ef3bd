// cmd/animviewer/watch.go
// 监视 sheet 定义文件及其图片，变更后触发热重载

package main

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher 资源文件监视器
// 监视目录而非单个文件：编辑器保存时常用"写临时文件再改名"的方式，
// 直接监视文件会在第一次改名后失效。
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string // 变更文件的路径
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher 创建监视器并开始监视指定目录
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close 停止监视，可安全重复调用
// Events 由 run 协程负责关闭，Close 只发停止信号，
// 避免与 run 中正在进行的发送竞争。
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)

	// 同一文件 100ms 内的重复事件只算一次（编辑器保存常触发多个事件）
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSheetAsset(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			select {
			case w.Events <- event.Name:
			default: // 事件积压时丢弃，重载本来就是幂等的
			}
		case <-w.closeCh:
			return
		}
	}
}

// isSheetAsset 报告路径是否为 sheet 定义或图片资源
func isSheetAsset(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".png":
		return true
	}
	return false
}
