package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/decker502/spriteanim/pkg/anim"
)

// Library 动画表注册中心
// 从目录批量加载 sheet 定义文件，按文件名（去扩展名）索引动画表。
// 重载时在锁外构建新表，锁内一次性替换，读方不会看到半旧半新的状态。
type Library struct {
	mu     sync.RWMutex
	dir    string
	tables map[string]*anim.AnimationTable
}

// NewLibrary 创建空的动画表注册中心
func NewLibrary() *Library {
	return &Library{
		tables: make(map[string]*anim.AnimationTable),
	}
}

// LoadDir 加载目录下所有 *.yaml sheet 定义文件
//
// 单个文件加载失败只记录警告并跳过，不中断其余文件；
// 一个文件都没加载成功时返回错误。
func (l *Library) LoadDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	tables := make(map[string]*anim.AnimationTable)
	for _, file := range files {
		table, err := LoadTableFile(file)
		if err != nil {
			log.Printf("[Library] Warning: skipping %s: %v", file, err)
			continue
		}
		tables[tableKey(file)] = table
	}

	if len(tables) == 0 {
		return fmt.Errorf("no sheet definitions loaded from %s", dir)
	}

	l.mu.Lock()
	l.dir = dir
	l.tables = tables
	l.mu.Unlock()

	log.Printf("[Library] Loaded %d sheet(s) from %s", len(tables), dir)
	return nil
}

// Get 按名称返回动画表
func (l *Library) Get(name string) (*anim.AnimationTable, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	table, ok := l.tables[name]
	return table, ok
}

// Reload 重新加载单个 sheet 定义
// 加载失败时保留旧表。
func (l *Library) Reload(name string) error {
	l.mu.RLock()
	dir := l.dir
	l.mu.RUnlock()

	if dir == "" {
		return fmt.Errorf("library has no source directory")
	}

	table, err := LoadTableFile(filepath.Join(dir, name+".yaml"))
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.tables[name] = table
	l.mu.Unlock()
	return nil
}

// Names 返回已加载动画表的名称（字典序）
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.tables))
	for name := range l.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tableKey 由文件路径得到注册名：去目录、去扩展名
func tableKey(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
