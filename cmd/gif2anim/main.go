// cmd/gif2anim/main.go
// GIF 转换工具：把动画 GIF 转成 sheet 图片 + sheet 定义文件
//
// 输出一张水平排列的 sheet PNG 和对应的 YAML 定义，
// 之后可直接用 animviewer 预览或在运行时加载。
//
// 用法：
//   go run ./cmd/gif2anim --in=bounce.gif --out=assets --name=bounce --loop=to_start

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/decker502/spriteanim/internal/sheetdef"
	"github.com/decker502/spriteanim/pkg/loader"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

var (
	inPath   = flag.String("in", "", "输入 GIF 文件路径（必填）")
	outDir   = flag.String("out", ".", "输出目录")
	name     = flag.String("name", "", "动画名称（默认取输入文件名）")
	loopMode = flag.String("loop", "to_start", "循环模式: none | to_start | to_frame")
	maxWidth = flag.Int("max-width", 0, "单帧最大宽度，0 表示不缩放")
)

func main() {
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "用法: gif2anim --in=<gif文件> [--out=目录] [--name=名称]")
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	animName := *name
	if animName == "" {
		base := filepath.Base(*inPath)
		animName = base[:len(base)-len(filepath.Ext(base))]
	}

	switch *loopMode {
	case sheetdef.LoopNameNone, sheetdef.LoopNameToStart, sheetdef.LoopNameToFrame:
	default:
		return fmt.Errorf("未知的循环模式 %q", *loopMode)
	}

	f, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("无法打开输入文件: %w", err)
	}
	defer f.Close()

	clip, err := loader.ImportGIF(f)
	if err != nil {
		return err
	}
	clip = clip.Scale(*maxWidth)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("无法创建输出目录: %w", err)
	}

	imageName := animName + ".png"
	if err := writeStrip(clip, filepath.Join(*outDir, imageName)); err != nil {
		return err
	}
	if err := writeSheet(clip, animName, imageName, filepath.Join(*outDir, animName+".yaml")); err != nil {
		return err
	}

	fmt.Printf("✅ %s: %d 帧 %dx%d -> %s, %s\n",
		animName, len(clip.Frames), clip.Width, clip.Height, imageName, animName+".yaml")
	return nil
}

// writeStrip 把所有帧水平拼接成一张 sheet PNG
func writeStrip(clip *loader.GIFClip, path string) error {
	strip := image.NewRGBA(image.Rect(0, 0, clip.Width*len(clip.Frames), clip.Height))
	for i, frame := range clip.Frames {
		r := image.Rect(i*clip.Width, 0, (i+1)*clip.Width, clip.Height)
		draw.Draw(strip, r, frame, frame.Bounds().Min, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("无法创建 sheet 图片: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, strip); err != nil {
		return fmt.Errorf("PNG 编码失败: %w", err)
	}
	return nil
}

// writeSheet 生成对应的 sheet 定义文件
func writeSheet(clip *loader.GIFClip, animName, imageName, path string) error {
	frames := make([]sheetdef.FrameRef, 0, len(clip.Frames))
	for i, d := range clip.Durations {
		frames = append(frames, sheetdef.FrameRef{Cell: i, Duration: d})
	}

	sheet := &sheetdef.Sheet{
		Image: imageName,
		Grid: sheetdef.Grid{
			FrameWidth:  clip.Width,
			FrameHeight: clip.Height,
		},
		Animations: []sheetdef.Animation{
			{
				Name:   animName,
				Speed:  1.0,
				Loop:   *loopMode,
				Frames: frames,
			},
		},
	}

	data, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("YAML 编码失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("无法写入 sheet 定义: %w", err)
	}
	return nil
}
