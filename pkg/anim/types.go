// Package anim 提供帧动画的核心数据模型和播放状态机
//
// 两个核心对象：
//   - AnimationTable：按名称索引的动画定义集合（加载后只读）
//   - Player：单个实体的播放状态，由外部每 tick 调用一次 Advance 驱动
//
// 数据单向流动：AnimationTable 是只读输入，Player 只修改自己的状态，
// 并把解析出的帧图片推送给 render.Target。
package anim

import "github.com/hajimehoshi/ebiten/v2"

// FrameDef 动画中的单帧：一张图片和它的停留时长
type FrameDef struct {
	Image    *ebiten.Image // 帧图片
	Duration float64       // 停留时长（秒），非负
}

// LoopMode 循环模式：播放索引越界（动画完成）时的处理方式
type LoopMode int

const (
	// LoopNone 不循环，播放完成后停止
	LoopNone LoopMode = iota

	// LoopToStart 回到起点继续播放（反向播放时回到末帧）
	LoopToStart

	// LoopToFrame 跳转到指定的 LoopFrame 继续播放
	LoopToFrame
)

// String 返回循环模式的字符串表示（用于日志和配置）
func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopToStart:
		return "to_start"
	case LoopToFrame:
		return "to_frame"
	default:
		return "unknown"
	}
}

// AnimationDef 一个命名动画的定义
// 由 AnimationTable 持有；除编辑器显式增删外，创建后不再修改。
type AnimationDef struct {
	Name       string     // 表内唯一的名称
	Frames     []FrameDef // 有序帧序列，有效动画至少 1 帧
	SpeedRatio float64    // 播放速度倍率，必须为正
	Loop       LoopMode   // 循环模式
	LoopFrame  int        // Loop == LoopToFrame 时的跳转帧索引
}

// Valid 报告定义是否可用于运行时播放
// 无效的定义保留在表的底层列表中（供编辑器修正），但不参与查找。
func (d *AnimationDef) Valid() bool {
	return d != nil && d.SpeedRatio > 0 && len(d.Frames) > 0 && d.LoopFrame >= 0
}

// FrameCount 返回帧数
func (d *AnimationDef) FrameCount() int {
	if d == nil {
		return 0
	}
	return len(d.Frames)
}
