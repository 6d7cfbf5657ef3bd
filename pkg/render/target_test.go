package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestSpriteTargetDraw 测试精灵目标的设置与绘制
func TestSpriteTargetDraw(t *testing.T) {
	target := NewSpriteTarget()
	screen := ebiten.NewImage(64, 64)

	// 未设置图片时 Draw 不崩溃
	target.Draw(screen)
	if target.Image() != nil {
		t.Error("Fresh target should have no image")
	}

	img := ebiten.NewImage(10, 10)
	target.SetImage(img)
	if target.Image() != img {
		t.Error("SetImage should store the image")
	}

	target.SetPosition(32, 32)
	target.FlipX = true
	target.ScaleX = 2.0
	target.Draw(screen)
}

// TestCanvasTargetRedraw 测试画布目标的惰性重绘
func TestCanvasTargetRedraw(t *testing.T) {
	target := NewCanvasTarget(32, 32)

	// 未设置图片时画布可用且为空
	canvas := target.Canvas()
	if canvas == nil || canvas.Bounds().Dx() != 32 {
		t.Fatal("Expected a 32x32 canvas")
	}

	img := ebiten.NewImage(16, 8)
	img.Fill(color.White)
	target.SetImage(img)

	if target.Canvas() != canvas {
		t.Error("Canvas identity must be stable across redraws")
	}

	// 同一帧重复设置不触发重绘状态变化
	target.SetImage(img)
	target.Canvas()
}
