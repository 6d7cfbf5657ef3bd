package render

import "github.com/hajimehoshi/ebiten/v2"

// CanvasTarget UI 画布渲染目标
// 把当前帧等比缩放后居中绘制到固定大小的离屏画布上，
// 适用于面板、预览窗格等 UI 场景。
type CanvasTarget struct {
	canvas *ebiten.Image
	img    *ebiten.Image
	dirty  bool
}

// NewCanvasTarget 创建指定大小的画布渲染目标
func NewCanvasTarget(width, height int) *CanvasTarget {
	return &CanvasTarget{
		canvas: ebiten.NewImage(width, height),
	}
}

// SetImage 实现 Target 接口
func (t *CanvasTarget) SetImage(img *ebiten.Image) {
	if img == t.img {
		return
	}
	t.img = img
	t.dirty = true
}

// Canvas 返回画布图片
// 帧发生变化后才重绘，未变化时直接返回缓存的画布。
func (t *CanvasTarget) Canvas() *ebiten.Image {
	if t.dirty {
		t.redraw()
		t.dirty = false
	}
	return t.canvas
}

// redraw 清空画布并把当前帧等比缩放居中绘制
func (t *CanvasTarget) redraw() {
	t.canvas.Clear()
	if t.img == nil {
		return
	}

	cw, ch := t.canvas.Bounds().Dx(), t.canvas.Bounds().Dy()
	iw, ih := t.img.Bounds().Dx(), t.img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	// 等比缩放，取宽高两个方向的较小比例
	scale := float64(cw) / float64(iw)
	if s := float64(ch) / float64(ih); s < scale {
		scale = s
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(cw)-float64(iw)*scale)/2,
		(float64(ch)-float64(ih)*scale)/2,
	)
	t.canvas.DrawImage(t.img, op)
}
