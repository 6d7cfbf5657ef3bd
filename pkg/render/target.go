// Package render 提供动画播放的渲染目标
//
// 核心播放器只依赖 Target 接口：每当解析出一帧图片时调用一次 SetImage。
// 具体如何把图片画到屏幕上（世界坐标精灵、UI 面板等）由各实现决定。
package render

import "github.com/hajimehoshi/ebiten/v2"

// Target 接收动画播放器解析出的当前帧图片
type Target interface {
	// SetImage 设置当前要显示的帧图片
	SetImage(img *ebiten.Image)
}
