// cmd/animviewer/main.go
// 动画预览工具
//
// 加载一个 sheet 定义文件并交互式播放其中的动画，
// 定义文件或图片被外部编辑器修改后自动热重载。
//
// 用法：
//   go run ./cmd/animviewer --sheet=assets/walker.yaml

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/spriteanim/pkg/anim"
	"github.com/decker502/spriteanim/pkg/clock"
	"github.com/decker502/spriteanim/pkg/loader"
	"github.com/decker502/spriteanim/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

var (
	sheetPath  = flag.String("sheet", "", "sheet 定义文件路径（必填）")
	configPath = flag.String("config", "animviewer.yaml", "预览工具配置文件路径")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

// Game 预览工具主结构
type Game struct {
	config *ViewerConfig
	prefs  *PrefsManager

	table  *anim.AnimationTable
	player *anim.Player
	target *render.SpriteTarget
	source clock.Source

	names     []string // 当前表中的动画名称
	nameIndex int      // 当前选中的动画
	lastFrame int      // 最近一次帧切换事件的索引
	loops     int      // 完成事件计数

	watcher *Watcher
}

// NewGame 创建预览工具实例
func NewGame(config *ViewerConfig, prefs *PrefsManager) (*Game, error) {
	table, err := loader.LoadTableFile(*sheetPath)
	if err != nil {
		return nil, err
	}

	target := render.NewSpriteTarget()
	target.SetPosition(float64(config.Window.Width)/2, float64(config.Window.Height)/2)

	cl := clock.NewClock(config.Playback.TPS)
	cl.SetScale(config.Playback.EffectiveTimeScale())

	g := &Game{
		config: config,
		prefs:  prefs,
		table:  table,
		player: anim.NewPlayer(table, target),
		target: target,
		source: cl.SourceFor(clock.Config{UseUnscaled: config.Playback.UnscaledTime}),
		names:  table.Names(),
	}
	if len(g.names) == 0 {
		return nil, fmt.Errorf("sheet 中没有有效的动画")
	}

	// 恢复上次查看的动画
	if idx := indexOf(g.names, prefs.Get().LastAnimation); idx >= 0 {
		g.nameIndex = idx
	}
	if prefs.Get().Speed != 1.0 {
		g.player.SetSpeedOverride(prefs.Get().Speed)
	}
	g.playCurrent(false)

	// 监视 sheet 所在目录实现热重载
	watcher, err := NewWatcher(filepath.Dir(*sheetPath))
	if err != nil {
		log.Printf("[Viewer] Warning: 热重载不可用: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

// playCurrent 播放当前选中的动画并重新挂接通知回调
func (g *Game) playCurrent(reversed bool) {
	name := g.names[g.nameIndex]

	ok := false
	if reversed {
		ok = g.player.PlayReversed(name)
	} else {
		ok = g.player.Play(name)
	}
	if !ok {
		log.Printf("[Viewer] 无法播放动画 %q", name)
		return
	}

	// 回调在 Play 之后注册（Play 会清除旧回调）
	g.lastFrame = g.player.CurrentFrame()
	g.loops = 0
	g.player.OnFrameChanged(func(idx int) { g.lastFrame = idx })
	g.player.OnComplete(func() { g.loops++ })

	g.prefs.Get().LastAnimation = name
	g.savePrefs()
}

// savePrefs 保存偏好设置，失败只告警不中断
func (g *Game) savePrefs() {
	if err := g.prefs.Save(); err != nil {
		log.Printf("[Viewer] Warning: 保存偏好设置失败: %v", err)
	}
}

// reload 热重载 sheet 定义
func (g *Game) reload() {
	table, err := loader.LoadTableFile(*sheetPath)
	if err != nil {
		log.Printf("[Viewer] 重载失败（保留旧表）: %v", err)
		return
	}

	g.table = table
	g.player.BindTable(table)
	g.names = table.Names()
	if len(g.names) == 0 {
		log.Printf("[Viewer] 重载后没有有效动画")
		return
	}
	if g.nameIndex >= len(g.names) {
		g.nameIndex = 0
	}
	g.playCurrent(g.player.IsReversed())
	log.Printf("[Viewer] 已重载 %s", *sheetPath)
}

// Update 实现 ebiten.Game 接口
func (g *Game) Update() error {
	// 处理热重载事件（非阻塞）
	if g.watcher != nil {
		select {
		case path, ok := <-g.watcher.Events:
			if ok {
				log.Printf("[Viewer] 检测到文件变更: %s", path)
				g.reload()
			}
		default:
		}
	}

	g.handleInput()

	// 每 tick 推进一次：基础增量来自时间源，速度倍率由播放器解析
	g.player.Advance(g.player.ResolveDelta(g.source.Delta()))
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.nameIndex = (g.nameIndex + 1) % len(g.names)
		g.playCurrent(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.nameIndex = (g.nameIndex - 1 + len(g.names)) % len(g.names)
		g.playCurrent(false)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.player.Pause(!g.player.IsPaused())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.playCurrent(!g.player.IsReversed())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.player.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.playCurrent(false)
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.prefs.Get().ShowHelp = !g.prefs.Get().ShowHelp
		g.savePrefs()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual): // '+' 加速
		g.adjustSpeed(0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.adjustSpeed(-0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit0):
		g.prefs.Get().Speed = 1.0
		g.player.ClearSpeedOverride()
		g.savePrefs()
	}
}

// adjustSpeed 调整速度覆盖值，范围 [0.25, 4.0]
func (g *Game) adjustSpeed(delta float64) {
	p := g.prefs.Get()
	p.Speed += delta
	if p.Speed < 0.25 {
		p.Speed = 0.25
	}
	if p.Speed > 4.0 {
		p.Speed = 4.0
	}
	g.player.SetSpeedOverride(p.Speed)
	g.savePrefs()
}

// Draw 实现 ebiten.Game 接口
func (g *Game) Draw(screen *ebiten.Image) {
	g.target.Draw(screen)

	status := fmt.Sprintf("%s  frame %d  loops %d", g.names[g.nameIndex], g.lastFrame, g.loops)
	if g.player.IsPaused() {
		status += "  [paused]"
	}
	if !g.player.IsPlaying() {
		status += "  [stopped]"
	}
	if g.player.IsReversed() {
		status += "  [reversed]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)

	if g.prefs.Get().ShowHelp {
		help := "←/→ switch  Space pause  R reverse  S stop\n" +
			"Enter restart  +/- speed  0 reset speed\n" +
			"F5 reload  H help"
		ebitenutil.DebugPrintAt(screen, help, 10, g.config.Window.Height-60)
	}
}

// Layout 实现 ebiten.Game 接口
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if *sheetPath == "" {
		fmt.Fprintln(os.Stderr, "用法: animviewer --sheet=<sheet定义文件>")
		os.Exit(2)
	}

	config, err := LoadViewerConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// gdata 打开失败时进入降级模式（偏好设置仅保留在内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "spriteanim_viewer"})
	if err != nil {
		log.Printf("[Viewer] Warning: 偏好设置存储不可用: %v", err)
		gdataManager = nil
	}
	prefs := NewPrefsManager(gdataManager)

	game, err := NewGame(config, prefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if game.watcher != nil {
			_ = game.watcher.Close()
		}
	}()

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Playback.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// indexOf 返回 name 在 names 中的位置，找不到返回 -1
func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
