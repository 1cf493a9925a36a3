package handle

import "testing"

func TestRadioValueSentinel(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()
	g.Option("one", "1")
	g.Option("two", "2")

	if got := g.Value(); got != "" {
		t.Fatalf("Value before any selection = %q, want empty sentinel", got)
	}
	if _, ok := g.Selected(); ok {
		t.Fatal("Selected before any selection should report false")
	}

	g.SetSelected("2")
	if got := g.Value(); got != "2" {
		t.Fatalf("Value = %q, want %q", got, "2")
	}
	if v, ok := g.Selected(); !ok || v != "2" {
		t.Fatalf("Selected = (%q, %v)", v, ok)
	}
}

func TestRadioSelectionIsExclusive(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()
	g.Option("one", "1")
	g.Option("two", "2")

	g.SetSelected("1")
	g.SetSelected("2")

	checked := 0
	for _, in := range g.inputs() {
		if in.Attr("checked") != "" {
			checked++
		}
	}
	if checked != 1 {
		t.Fatalf("%d options checked, want 1", checked)
	}
}

func TestRadioOptionCreatesInputAndLabel(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()

	opt := g.Option("one", "1")
	if opt.Tag() != "input" || opt.InputType() != "radio" {
		t.Fatalf("option node is %s/%s", opt.Tag(), opt.InputType())
	}
	if got := opt.Attr("name"); got != g.GroupName() {
		t.Errorf("option group name = %q, want %q", got, g.GroupName())
	}

	children := g.Node().Children()
	if len(children) != 2 {
		t.Fatalf("child count = %d, want input + label", len(children))
	}
	if children[1].Tag() != "label" || children[1].Text() != "one" {
		t.Errorf("adjacent label missing, got %s %q", children[1].Tag(), children[1].Text())
	}
}

func TestRadioOptionWithoutLabel(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()

	opt := g.Option("", "1")
	if got := opt.Attr("value"); got != "1" {
		t.Errorf("value = %q", got)
	}
	if got := len(g.Node().Children()); got != 1 {
		t.Fatalf("child count = %d, want input only", got)
	}
}

func TestRadioValueDefaultsToLabel(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()

	opt := g.Option("medium")
	if got := opt.Attr("value"); got != "medium" {
		t.Errorf("value = %q, want label default", got)
	}
}

func TestRadioAccessorsIgnoreLabels(t *testing.T) {
	rt, _ := setupRuntime(t)
	g := rt.CreateRadio()
	g.Option("one", "1")
	g.Option("two", "2")

	// Labels carrying stray attributes must never be scanned.
	for _, c := range g.Node().Children() {
		if c.Tag() == "label" {
			c.SetAttr("checked", "true")
			c.SetAttr("value", "bogus")
		}
	}

	if got := g.Value(); got != "" {
		t.Fatalf("Value scanned a label, got %q", got)
	}
	if got := len(g.inputs()); got != 2 {
		t.Fatalf("inputs() = %d nodes, want 2", got)
	}
}

func TestRadioGroupNamesAreUnique(t *testing.T) {
	rt, _ := setupRuntime(t)

	a := rt.CreateRadio()
	b := rt.CreateRadio()
	if a.GroupName() == b.GroupName() {
		t.Fatal("two groups share one generated name")
	}

	// Options of separate groups stay independently selectable.
	a.Option("x", "1")
	b.Option("x", "1")
	a.SetSelected("1")
	if got := b.Value(); got != "" {
		t.Errorf("selection leaked across groups: %q", got)
	}
}
