// tools/validate_sheets.go
// 校验目录下所有 sheet 定义文件
//
// 用法：
//   go run tools/validate_sheets.go [目录]

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/spriteanim/internal/sheetdef"
)

func main() {
	dir := "assets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ 扫描目录失败: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("❌ 目录 %s 下没有 YAML 文件\n", dir)
		os.Exit(1)
	}

	failed := 0
	for _, file := range files {
		sheet, err := sheetdef.ParseSheetFile(file)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", file, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %d 个动画\n", file, len(sheet.Animations))
		for _, a := range sheet.Animations {
			fmt.Printf("   - %s: %d 帧, speed=%.2f, loop=%s\n",
				a.Name, len(a.Frames), a.Speed, a.Loop)
		}
	}

	if failed > 0 {
		fmt.Printf("\n共 %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
	fmt.Printf("\n全部 %d 个文件校验通过\n", len(files))
}
