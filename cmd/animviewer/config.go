// cmd/animviewer/config.go
// 预览工具的配置文件加载和解析

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewerConfig 预览工具完整配置
type ViewerConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Playback PlaybackConfig `yaml:"playback"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlaybackConfig 播放配置
type PlaybackConfig struct {
	TPS int `yaml:"tps"` // 目标 TPS（保持 60 以确保流畅的输入响应）
	// 全局时间缩放。用指针区分"未配置"（默认 1.0）和显式 0（冻结播放）。
	TimeScale    *float64 `yaml:"time_scale"`
	UnscaledTime bool     `yaml:"unscaled_time"` // 使用不受时间缩放影响的时间源
}

// EffectiveTimeScale 返回配置的时间缩放，applyConfigDefaults 之后必有值
func (c *PlaybackConfig) EffectiveTimeScale() float64 {
	if c.TimeScale == nil {
		return 1.0
	}
	return *c.TimeScale
}

// DefaultViewerConfig 返回默认配置
func DefaultViewerConfig() *ViewerConfig {
	return &ViewerConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Animation Viewer",
		},
		Playback: PlaybackConfig{
			TPS:       60,
			TimeScale: floatPtr(1.0),
		},
	}
}

// LoadViewerConfig 从文件加载配置
// 文件不存在时直接使用默认配置（配置文件是可选的）。
func LoadViewerConfig(configPath string) (*ViewerConfig, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultViewerConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config ViewerConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyConfigDefaults(&config)
	return &config, nil
}

// applyConfigDefaults 填充缺省字段
func applyConfigDefaults(config *ViewerConfig) {
	if config.Window.Width == 0 {
		config.Window.Width = 800
	}
	if config.Window.Height == 0 {
		config.Window.Height = 600
	}
	if config.Window.Title == "" {
		config.Window.Title = "Animation Viewer"
	}
	if config.Playback.TPS == 0 {
		config.Playback.TPS = 60
	}
	if config.Playback.TimeScale == nil {
		config.Playback.TimeScale = floatPtr(1.0)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
