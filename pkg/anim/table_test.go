package anim

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func validDef(name string) *AnimationDef {
	return &AnimationDef{
		Name: name,
		Frames: []FrameDef{
			{Image: ebiten.NewImage(10, 10), Duration: 0.1},
		},
		SpeedRatio: 1.0,
	}
}

// TestTableAddLookupRoundTrip 测试 add 后 lookup 返回同一定义，remove 后返回未找到
func TestTableAddLookupRoundTrip(t *testing.T) {
	table := NewAnimationTable()
	def := validDef("walk")

	if !table.Add(def) {
		t.Fatal("Add should succeed for a new definition")
	}
	if got := table.Lookup("walk"); got != def {
		t.Errorf("Lookup should return the added definition, got %v", got)
	}
	if !table.Remove("walk") {
		t.Fatal("Remove should succeed for an existing name")
	}
	if got := table.Lookup("walk"); got != nil {
		t.Errorf("Lookup after Remove should return nil, got %v", got)
	}
	if table.Remove("walk") {
		t.Error("Remove of an absent name should return false")
	}
}

// TestTableAddRejectsDuplicatesAndNil 测试重名和 nil 的 Add 被拒绝且不修改表
func TestTableAddRejectsDuplicatesAndNil(t *testing.T) {
	table := NewAnimationTable(validDef("walk"))

	if table.Add(nil) {
		t.Error("Add(nil) should return false")
	}
	if table.Add(validDef("walk")) {
		t.Error("Add with a duplicate name should return false")
	}
	if table.Len() != 1 {
		t.Errorf("Rejected Add must not change the table, len=%d", table.Len())
	}
}

// TestTableLookupEmptyAndAbsent 测试空名称和不存在名称的查找
func TestTableLookupEmptyAndAbsent(t *testing.T) {
	table := NewAnimationTable(validDef("walk"))

	if table.Lookup("") != nil {
		t.Error("Lookup of an empty name should return nil")
	}
	if table.Lookup("missing") != nil {
		t.Error("Lookup of an absent name should return nil")
	}
	if table.IDOf("missing") != -1 {
		t.Error("IDOf of an absent name should return -1")
	}
	if table.IDOf("") != -1 {
		t.Error("IDOf of an empty name should return -1")
	}
	if table.Contains("missing") {
		t.Error("Contains of an absent name should be false")
	}
}

// TestTableInvalidExcludedFromIndex 测试无效定义保留在底层列表但不参与查找
func TestTableInvalidExcludedFromIndex(t *testing.T) {
	invalid := &AnimationDef{Name: "broken", SpeedRatio: 1.0} // 零帧
	table := NewAnimationTable(validDef("walk"), invalid)

	if table.Lookup("broken") != nil {
		t.Error("Lookup of an invalid-but-present name should return nil")
	}
	if table.IDOf("broken") != -1 {
		t.Error("IDOf of an invalid definition should return -1")
	}
	if table.LookupByID(1) != nil {
		t.Error("LookupByID of an invalid definition should return nil")
	}
	if table.Len() != 2 {
		t.Errorf("Invalid definitions stay in the backing list, len=%d", table.Len())
	}
	if table.At(1) != invalid {
		t.Error("At should expose the raw backing entry for authoring tools")
	}

	// 修正后重新可见
	invalid.Frames = []FrameDef{{Image: ebiten.NewImage(10, 10), Duration: 0.1}}
	table.RebuildIndex()
	if table.Lookup("broken") == nil {
		t.Error("A repaired definition should be visible after RebuildIndex")
	}
}

// TestTableIDOfAndLookupByID 测试按 authoring 顺序的索引查找
func TestTableIDOfAndLookupByID(t *testing.T) {
	a, b, c := validDef("b_walk"), validDef("a_idle"), validDef("c_run")
	table := NewAnimationTable(a, b, c)

	if id := table.IDOf("a_idle"); id != 1 {
		t.Errorf("Expected IDOf(a_idle)=1, got %d", id)
	}
	if got := table.LookupByID(2); got != c {
		t.Errorf("Expected LookupByID(2)=c_run, got %v", got)
	}
	if table.LookupByID(-1) != nil || table.LookupByID(3) != nil {
		t.Error("Out-of-range LookupByID should return nil")
	}
}

// TestTableSortAlphabetically 测试按名称重排：只改变顺序和 IDOf 的结果
func TestTableSortAlphabetically(t *testing.T) {
	a, b, c := validDef("b_walk"), validDef("a_idle"), validDef("c_run")
	table := NewAnimationTable(a, b, c)

	table.SortAlphabetically()

	if id := table.IDOf("a_idle"); id != 0 {
		t.Errorf("Expected IDOf(a_idle)=0 after sort, got %d", id)
	}
	if id := table.IDOf("b_walk"); id != 1 {
		t.Errorf("Expected IDOf(b_walk)=1 after sort, got %d", id)
	}
	if got := table.Lookup("c_run"); got != c {
		t.Error("Sort must not change definition identity")
	}
}

// TestTableNames 测试 Names 只包含有效定义且保持 authoring 顺序
func TestTableNames(t *testing.T) {
	invalid := &AnimationDef{Name: "broken", SpeedRatio: 1.0}
	table := NewAnimationTable(validDef("walk"), invalid, validDef("run"))

	names := table.Names()
	if len(names) != 2 || names[0] != "walk" || names[1] != "run" {
		t.Errorf("Expected [walk run], got %v", names)
	}
}

// TestAnimationDefValid 测试有效性判定的各个条件
func TestAnimationDefValid(t *testing.T) {
	def := validDef("walk")
	if !def.Valid() {
		t.Fatal("A one-frame positive-speed definition is valid")
	}

	cases := []struct {
		name   string
		mutate func(*AnimationDef)
	}{
		{"no frames", func(d *AnimationDef) { d.Frames = nil }},
		{"zero speed", func(d *AnimationDef) { d.SpeedRatio = 0 }},
		{"negative speed", func(d *AnimationDef) { d.SpeedRatio = -1 }},
		{"negative loop frame", func(d *AnimationDef) { d.LoopFrame = -1 }},
	}
	for _, tc := range cases {
		d := validDef("x")
		tc.mutate(d)
		if d.Valid() {
			t.Errorf("%s: expected invalid", tc.name)
		}
	}

	var nilDef *AnimationDef
	if nilDef.Valid() {
		t.Error("nil definition must be invalid")
	}
	if nilDef.FrameCount() != 0 {
		t.Error("nil definition has zero frames")
	}
}
