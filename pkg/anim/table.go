package anim

import "sort"

// AnimationTable 命名动画定义的集合
//
// 底层是权威的有序列表（authoring 顺序），查找通过两个惰性重建的
// 索引进行：name→def 和 name→index。任何修改列表的操作都会把索引
// 标记为脏，下一次查找时整体重建并原子替换，绝不暴露半新半旧的索引。
//
// 无效的定义（空帧序列、非正速度、负循环帧）保留在列表里供编辑器
// 修正，但不会进入重建后的索引：按名称查找无效动画返回未找到。
type AnimationTable struct {
	defs    []*AnimationDef
	byName  map[string]*AnimationDef
	indexOf map[string]int
	dirty   bool
}

// NewAnimationTable 从有序定义列表构建动画表
func NewAnimationTable(defs ...*AnimationDef) *AnimationTable {
	t := &AnimationTable{
		defs:  append([]*AnimationDef(nil), defs...),
		dirty: true,
	}
	return t
}

// Len 返回底层列表中的定义数量（含无效定义）
func (t *AnimationTable) Len() int {
	return len(t.defs)
}

// Lookup 按名称查找动画定义
// 名称为空、不存在或定义无效时返回 nil。
func (t *AnimationTable) Lookup(name string) *AnimationDef {
	if name == "" {
		return nil
	}
	t.ensureIndex()
	return t.byName[name]
}

// LookupByID 按 authoring 顺序位置查找动画定义
// 越界或定义无效时返回 nil。
func (t *AnimationTable) LookupByID(id int) *AnimationDef {
	if id < 0 || id >= len(t.defs) {
		return nil
	}
	def := t.defs[id]
	if !def.Valid() {
		return nil
	}
	return def
}

// IDOf 返回名称对应的 authoring 顺序位置，未找到返回 -1
func (t *AnimationTable) IDOf(name string) int {
	if name == "" {
		return -1
	}
	t.ensureIndex()
	if id, ok := t.indexOf[name]; ok {
		return id
	}
	return -1
}

// Contains 报告名称是否对应一个有效的动画定义
func (t *AnimationTable) Contains(name string) bool {
	return t.Lookup(name) != nil
}

// Add 追加一个动画定义
// def 为 nil 或已存在同名定义时不做任何修改并返回 false。
func (t *AnimationTable) Add(def *AnimationDef) bool {
	if def == nil {
		return false
	}
	// 重名检查针对底层列表：无效定义同样占用名称
	for _, d := range t.defs {
		if d.Name == def.Name {
			return false
		}
	}
	t.defs = append(t.defs, def)
	t.dirty = true
	return true
}

// Remove 删除第一个名称匹配的定义，不存在时返回 false
func (t *AnimationTable) Remove(name string) bool {
	for i, d := range t.defs {
		if d.Name == name {
			t.defs = append(t.defs[:i], t.defs[i+1:]...)
			t.dirty = true
			return true
		}
	}
	return false
}

// At 返回底层列表第 i 个定义（含无效定义），越界返回 nil
// 供编辑器和校验工具遍历原始列表使用。
func (t *AnimationTable) At(i int) *AnimationDef {
	if i < 0 || i >= len(t.defs) {
		return nil
	}
	return t.defs[i]
}

// Names 按 authoring 顺序返回所有有效动画的名称
func (t *AnimationTable) Names() []string {
	names := make([]string, 0, len(t.defs))
	for _, d := range t.defs {
		if d.Valid() {
			names = append(names, d.Name)
		}
	}
	return names
}

// SortAlphabetically 按名称重排底层列表
// 只改变顺序（以及 IDOf 的结果），不改变任何定义本身。
func (t *AnimationTable) SortAlphabetically() {
	sort.SliceStable(t.defs, func(i, j int) bool {
		return t.defs[i].Name < t.defs[j].Name
	})
	t.dirty = true
}

// RebuildIndex 从权威列表整体重建两个查找索引
// 先在局部变量中建好新索引，再一次性替换，避免暴露部分重建状态。
func (t *AnimationTable) RebuildIndex() {
	byName := make(map[string]*AnimationDef, len(t.defs))
	indexOf := make(map[string]int, len(t.defs))
	for i, d := range t.defs {
		if !d.Valid() {
			continue
		}
		if _, exists := byName[d.Name]; exists {
			continue
		}
		byName[d.Name] = d
		indexOf[d.Name] = i
	}
	t.byName = byName
	t.indexOf = indexOf
	t.dirty = false
}

// ensureIndex 惰性重建索引
func (t *AnimationTable) ensureIndex() {
	if t.dirty || t.byName == nil {
		t.RebuildIndex()
	}
}
