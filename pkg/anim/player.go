package anim

import (
	"log"

	"github.com/decker502/spriteanim/pkg/render"
)

// Handle 回调注册句柄，用于注销单个回调
type Handle int

// PlayOptions Play 的可选参数
type PlayOptions struct {
	// StartFrame 起始帧索引，越界时会被收拢到 [0, 帧数-1]
	StartFrame int

	// Reversed 反向播放（帧索引递减）
	Reversed bool

	// StartAtLastFrame 从最后一帧开始播放
	// 反向播放通常从末尾开始，用显式标志表达，覆盖 StartFrame。
	StartAtLastFrame bool
}

type frameChangedEntry struct {
	handle Handle
	fn     func(frameIndex int)
}

type completeEntry struct {
	handle Handle
	fn     func()
}

// Player 单个实体的帧动画播放状态机
//
// 状态：STOPPED / PLAYING / PAUSED，外加隐式的单帧子状态
// （当前动画只有一帧时进入，此时 Advance 永远不推进帧）。
//
// 每个外部 tick 调用一次 Advance(deltaSeconds)。Player 不拥有
// AnimationTable，只读取它；自己的可变状态由自己独占，无需加锁。
type Player struct {
	table  *AnimationTable
	target render.Target

	cur         *AnimationDef
	frameIndex  int
	elapsed     float64 // 当前帧已累计的时间（秒）
	playing     bool
	paused      bool
	reversed    bool
	singleFrame bool

	speedOverride   float64
	speedOverrideOn bool

	frameChanged []frameChangedEntry
	completed    []completeEntry
	nextHandle   Handle
}

// NewPlayer 创建绑定到指定动画表和渲染目标的播放器
// target 可为 nil（只推进状态，不输出帧）。
func NewPlayer(table *AnimationTable, target render.Target) *Player {
	return &Player{
		table:  table,
		target: target,
	}
}

// BindTable 重新绑定动画表（不影响当前播放状态）
func (p *Player) BindTable(table *AnimationTable) {
	p.table = table
}

// Play 从第 0 帧正向播放指定动画
func (p *Player) Play(name string) bool {
	return p.PlayWith(name, PlayOptions{})
}

// PlayFrom 从指定帧正向播放
func (p *Player) PlayFrom(name string, startFrame int) bool {
	return p.PlayWith(name, PlayOptions{StartFrame: startFrame})
}

// PlayReversed 从最后一帧反向播放
func (p *Player) PlayReversed(name string) bool {
	return p.PlayWith(name, PlayOptions{Reversed: true, StartAtLastFrame: true})
}

// PlayWith 按选项播放指定动画
//
// 名称为空或在表中找不到有效定义时返回 false，已有状态不变。
// 成功时清除所有已注册回调（回调应在 Play 之后注册）、重置帧计时，
// 并立即把起始帧推送给渲染目标——不需要等第一个 tick。
func (p *Player) PlayWith(name string, opts PlayOptions) bool {
	if name == "" || p.table == nil {
		return false
	}
	def := p.table.Lookup(name)
	if def == nil {
		return false
	}

	p.clearCallbacks()

	n := len(def.Frames)
	idx := opts.StartFrame
	if opts.StartAtLastFrame {
		idx = n - 1
	}
	idx = clampFrame(idx, n)

	p.cur = def
	p.reversed = opts.Reversed
	p.frameIndex = idx
	p.elapsed = 0
	p.playing = true
	p.paused = false
	p.singleFrame = n == 1

	p.emitFrame()
	return true
}

// Pause 设置暂停标志，不影响帧索引和帧计时
func (p *Player) Pause(paused bool) {
	p.paused = paused
}

// Stop 停止播放并释放所有回调
// 帧索引和帧计时保持原样，调用方仍可查询最后显示的帧。
// 对已停止的播放器调用除清除回调外无任何效果。
func (p *Player) Stop() {
	p.playing = false
	p.paused = false
	p.clearCallbacks()
}

// SetFrame 绑定动画并直接显示指定帧，不开始播放
// 进入单帧锁定状态：之后的 Advance 不会推进帧。
func (p *Player) SetFrame(name string, frameIndex int) bool {
	if name == "" || p.table == nil {
		return false
	}
	def := p.table.Lookup(name)
	if def == nil {
		return false
	}

	p.cur = def
	p.singleFrame = true
	p.frameIndex = clampFrame(frameIndex, len(def.Frames))
	p.elapsed = 0

	p.emitFrame()
	return true
}

// Advance 按时间增量推进播放状态，每个外部 tick 调用一次
//
// 未在播放、已暂停、单帧锁定或未绑定动画时为空操作。
// 帧切换由逐帧时长阈值驱动：当前帧累计时间达到其 Duration 才前进。
// 索引越界即动画完成：先发出一次完成通知，再按循环模式处理——
// LoopNone 停止（本步不显示新帧），LoopToStart 回到起点（反向则末帧），
// LoopToFrame 跳到 LoopFrame。
func (p *Player) Advance(deltaSeconds float64) {
	if !p.playing || p.paused || p.singleFrame || p.cur == nil {
		return
	}

	p.elapsed += deltaSeconds

	n := len(p.cur.Frames)
	if p.frameIndex < 0 || p.frameIndex >= n {
		return
	}
	if p.elapsed < p.cur.Frames[p.frameIndex].Duration {
		return
	}

	p.elapsed = 0
	if p.reversed {
		p.frameIndex--
	} else {
		p.frameIndex++
	}

	if p.frameIndex < 0 || p.frameIndex >= n {
		// 动画完成：通知在循环处理之前发出，每次完成只发一次
		p.notifyComplete()

		switch p.cur.Loop {
		case LoopNone:
			p.Stop()
			return
		case LoopToStart:
			if p.reversed {
				p.frameIndex = n - 1
			} else {
				p.frameIndex = 0
			}
		case LoopToFrame:
			p.frameIndex = p.cur.LoopFrame
		}
	}

	if p.frameIndex >= 0 && p.frameIndex < n {
		p.emitFrame()
	} else {
		// 循环帧越界：动画在播放中被外部修改过，跳过本步显示但不中断播放
		log.Printf("[Player] Warning: frame index %d out of range for animation %q (%d frames), skipping display",
			p.frameIndex, p.cur.Name, n)
	}

	p.notifyFrameChanged(p.frameIndex)
}

// ResolveDelta 把外部基础时间增量换算成播放用增量
// 速度倍率的选择：有覆盖值用覆盖值，否则用当前动画的 SpeedRatio。
func (p *Player) ResolveDelta(baseDelta float64) float64 {
	if p.speedOverrideOn {
		return baseDelta * p.speedOverride
	}
	if p.cur != nil {
		return baseDelta * p.cur.SpeedRatio
	}
	return baseDelta
}

// SetSpeedOverride 设置速度覆盖值，优先于动画自身的 SpeedRatio
func (p *Player) SetSpeedOverride(v float64) {
	p.speedOverride = v
	p.speedOverrideOn = true
}

// ClearSpeedOverride 清除速度覆盖，恢复使用 SpeedRatio
func (p *Player) ClearSpeedOverride() {
	p.speedOverride = 0
	p.speedOverrideOn = false
}

// IsDone 报告动画是否已完成
// 未播放、单帧锁定，或已停在最后一帧且该帧已显示了非零时长时为 true。
// 最后一个条件沿用 elapsed > 0 的近似判断，见 DESIGN.md。
func (p *Player) IsDone() bool {
	if !p.playing || p.singleFrame {
		return true
	}
	if p.cur == nil {
		return true
	}
	return p.frameIndex == len(p.cur.Frames)-1 && p.elapsed > 0
}

// IsDoneNextFrame 预测下一个满足阈值的推进是否会完成动画
// 与 IsDone 不同，不看已累计时间，只看是否已在最后一帧。
func (p *Player) IsDoneNextFrame() bool {
	if !p.playing || p.singleFrame {
		return true
	}
	if p.cur == nil {
		return true
	}
	return p.frameIndex == len(p.cur.Frames)-1
}

// OnFrameChanged 注册帧切换回调，按注册顺序同步调用
// 返回的句柄用于 RemoveFrameChanged；Stop 和 Play 会清除所有回调。
func (p *Player) OnFrameChanged(fn func(frameIndex int)) Handle {
	p.nextHandle++
	p.frameChanged = append(p.frameChanged, frameChangedEntry{handle: p.nextHandle, fn: fn})
	return p.nextHandle
}

// OnComplete 注册完成回调，按注册顺序同步调用
func (p *Player) OnComplete(fn func()) Handle {
	p.nextHandle++
	p.completed = append(p.completed, completeEntry{handle: p.nextHandle, fn: fn})
	return p.nextHandle
}

// RemoveFrameChanged 注销帧切换回调，句柄无效时无效果
func (p *Player) RemoveFrameChanged(h Handle) {
	for i, e := range p.frameChanged {
		if e.handle == h {
			p.frameChanged = append(p.frameChanged[:i], p.frameChanged[i+1:]...)
			return
		}
	}
}

// RemoveComplete 注销完成回调，句柄无效时无效果
func (p *Player) RemoveComplete(h Handle) {
	for i, e := range p.completed {
		if e.handle == h {
			p.completed = append(p.completed[:i], p.completed[i+1:]...)
			return
		}
	}
}

// CurrentAnimation 返回当前绑定的动画定义，未绑定时为 nil
func (p *Player) CurrentAnimation() *AnimationDef {
	return p.cur
}

// CurrentFrame 返回当前帧索引
func (p *Player) CurrentFrame() int {
	return p.frameIndex
}

// ElapsedInFrame 返回当前帧已累计的时间（秒）
func (p *Player) ElapsedInFrame() float64 {
	return p.elapsed
}

// IsPlaying 报告是否处于播放状态（含暂停）
func (p *Player) IsPlaying() bool {
	return p.playing
}

// IsPaused 报告是否已暂停
func (p *Player) IsPaused() bool {
	return p.paused
}

// IsReversed 报告是否反向播放
func (p *Player) IsReversed() bool {
	return p.reversed
}

// IsSingleFrame 报告是否处于单帧锁定状态
func (p *Player) IsSingleFrame() bool {
	return p.singleFrame
}

// emitFrame 把当前帧图片推送给渲染目标
func (p *Player) emitFrame() {
	if p.target == nil || p.cur == nil {
		return
	}
	if p.frameIndex < 0 || p.frameIndex >= len(p.cur.Frames) {
		return
	}
	p.target.SetImage(p.cur.Frames[p.frameIndex].Image)
}

func (p *Player) notifyFrameChanged(frameIndex int) {
	for _, e := range p.frameChanged {
		e.fn(frameIndex)
	}
}

func (p *Player) notifyComplete() {
	for _, e := range p.completed {
		e.fn()
	}
}

func (p *Player) clearCallbacks() {
	p.frameChanged = nil
	p.completed = nil
}

// clampFrame 把帧索引收拢到 [0, n-1]
func clampFrame(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
