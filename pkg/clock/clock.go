// Package clock 提供驱动动画播放的时间源
//
// 播放器本身不关心时间从哪来：每个 tick 由外部取一次 baseDelta，
// 经 Player.ResolveDelta 换算后喂给 Advance。本包提供两类时间源：
//   - 固定步长（跟随游戏 TPS），分受全局时间缩放影响和不受影响两种
//   - 真实墙钟（编辑器空闲循环、测试驱动等非固定步长宿主）
package clock

import "time"

// Source 每个 tick 提供一次基础时间增量（秒）
type Source interface {
	Delta() float64
}

// Config 播放器时间源的选择开关
type Config struct {
	// UseUnscaled 使用不受全局时间缩放影响的时间源
	// （例如游戏暂停减速时 UI 动画仍按正常速度播放）
	UseUnscaled bool
}

// Clock 固定步长时钟
// 以目标 TPS 的倒数为基础步长，受全局时间缩放影响。
// 注意：TPS 保持 60 以确保流畅的输入响应，动画速度由
// Player 的 SpeedRatio 和这里的时间缩放控制。
type Clock struct {
	tps   int
	scale float64
}

// NewClock 创建固定步长时钟，tps 非正时取 60
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{tps: tps, scale: 1.0}
}

// SetScale 设置全局时间缩放，负值按 0 处理
func (c *Clock) SetScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// Scale 返回当前全局时间缩放
func (c *Clock) Scale() float64 {
	return c.scale
}

// Scaled 返回受时间缩放影响的时间源
func (c *Clock) Scaled() Source {
	return scaledSource{c}
}

// Unscaled 返回不受时间缩放影响的时间源
func (c *Clock) Unscaled() Source {
	return unscaledSource{c}
}

// SourceFor 按配置选择时间源
func (c *Clock) SourceFor(cfg Config) Source {
	if cfg.UseUnscaled {
		return c.Unscaled()
	}
	return c.Scaled()
}

func (c *Clock) step() float64 {
	return 1.0 / float64(c.tps)
}

type scaledSource struct{ c *Clock }

func (s scaledSource) Delta() float64 {
	return s.c.step() * s.c.scale
}

type unscaledSource struct{ c *Clock }

func (s unscaledSource) Delta() float64 {
	return s.c.step()
}

// RealTimeSource 墙钟时间源
// 返回距上一次调用经过的真实时间，首次调用返回 0。
type RealTimeSource struct {
	last time.Time
}

// NewRealTimeSource 创建墙钟时间源
func NewRealTimeSource() *RealTimeSource {
	return &RealTimeSource{}
}

// Delta 实现 Source 接口
func (s *RealTimeSource) Delta() float64 {
	now := time.Now()
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	d := now.Sub(s.last).Seconds()
	s.last = now
	return d
}
