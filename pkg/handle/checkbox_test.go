package handle

import "testing"

func TestCheckboxRoundTrip(t *testing.T) {
	rt, _ := setupRuntime(t)
	c := rt.CreateCheckbox()

	if c.Checked() {
		t.Fatal("fresh checkbox should be unchecked")
	}
	if got := c.Node().InputType(); got != "checkbox" {
		t.Fatalf("input type = %q", got)
	}

	c.SetChecked(true)
	if !c.Checked() {
		t.Fatal("Checked = false after SetChecked(true)")
	}
	if got := c.Node().Attr("checked"); got == "" {
		t.Fatal("host attribute not set")
	}

	c.SetChecked(false)
	if c.Checked() {
		t.Fatal("Checked = true after SetChecked(false)")
	}
	if got := c.Node().Attr("checked"); got != "" {
		t.Fatalf("host attribute survived unchecking: %q", got)
	}
}

func TestCheckboxStateVisibleAcrossHandles(t *testing.T) {
	rt, h := setupRuntime(t)
	c := rt.CreateCheckbox()
	c.SetChecked(true)

	rewrapped := Wrap(h, c.Node()).(*Checkbox)
	if !rewrapped.Checked() {
		t.Fatal("re-wrapped handle should see the checked state")
	}
}
