// cmd/animviewer/prefs.go
// 预览工具偏好设置的加载与保存（gdata 跨平台存储）

package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerPrefs 预览工具偏好设置
// 记住上次查看的动画和播放参数，下次启动时恢复。
type ViewerPrefs struct {
	LastAnimation string  `yaml:"lastAnimation"` // 上次播放的动画名称
	Speed         float64 `yaml:"speed"`         // 速度覆盖值，1.0 = 不覆盖
	ShowHelp      bool    `yaml:"showHelp"`      // 是否显示帮助面板
}

// DefaultPrefs 返回默认偏好设置
func DefaultPrefs() *ViewerPrefs {
	return &ViewerPrefs{
		Speed:    1.0,
		ShowHelp: true,
	}
}

// 存储路径常量
const (
	prefsObject   = "animviewer"
	prefsProperty = "prefs"
)

// PrefsManager 偏好设置管理器
// gdataManager 可为 nil（降级模式，仅内存，不持久化）。
type PrefsManager struct {
	gdataManager *gdata.Manager
	prefs        *ViewerPrefs
}

// NewPrefsManager 创建偏好设置管理器并尝试加载已保存的设置
func NewPrefsManager(gdataManager *gdata.Manager) *PrefsManager {
	pm := &PrefsManager{
		gdataManager: gdataManager,
		prefs:        DefaultPrefs(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[PrefsManager] Warning: Failed to load prefs: %v (using defaults)", err)
	}
	return pm
}

// Get 返回当前偏好设置（可直接修改，随后调用 Save）
func (pm *PrefsManager) Get() *ViewerPrefs {
	return pm.prefs
}

// Load 从 gdata 加载偏好设置
// gdataManager 为 nil 或尚无存档时使用默认值。
func (pm *PrefsManager) Load() error {
	if pm.gdataManager == nil {
		pm.prefs = DefaultPrefs()
		return nil
	}
	if !pm.gdataManager.ObjectPropExists(prefsObject, prefsProperty) {
		pm.prefs = DefaultPrefs()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		pm.prefs = DefaultPrefs()
		return fmt.Errorf("failed to load prefs: %w", err)
	}

	var loaded ViewerPrefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		pm.prefs = DefaultPrefs()
		return fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	if loaded.Speed <= 0 {
		loaded.Speed = 1.0
	}

	pm.prefs = &loaded
	return nil
}

// Save 保存偏好设置到 gdata
// 降级模式下直接返回 nil。
func (pm *PrefsManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := pm.gdataManager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}
