package game

import "testing"

func TestParseScript(t *testing.T) {
	inputs, err := ParseScript("ENTER, UP*3 ,LEFT+UP*2,M,WAIT,MOUSE=120.5,F2,esc")
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 11 {
		t.Fatalf("len = %d, want 11", len(inputs))
	}
	if !inputs[0].Enter || inputs[0].Up {
		t.Fatalf("step 0 = %+v", inputs[0])
	}
	for i := 1; i <= 3; i++ {
		if !inputs[i].Up || inputs[i].Left {
			t.Fatalf("step %d = %+v, want UP only", i, inputs[i])
		}
	}
	for i := 4; i <= 5; i++ {
		if !inputs[i].Up || !inputs[i].Left {
			t.Fatalf("step %d = %+v, want LEFT+UP", i, inputs[i])
		}
	}
	if !inputs[6].ToggleMode {
		t.Fatalf("step 6 = %+v, want M", inputs[6])
	}
	if inputs[7] != (Input{}) {
		t.Fatalf("WAIT produced %+v", inputs[7])
	}
	if !inputs[8].HasMouse || inputs[8].MouseX != 120.5 {
		t.Fatalf("step 8 = %+v", inputs[8])
	}
	if !inputs[9].CopySnapshot || !inputs[10].Escape {
		t.Fatalf("tail = %+v %+v", inputs[9], inputs[10])
	}
}

func TestParseScript_Empty(t *testing.T) {
	inputs, err := ParseScript("")
	if err != nil || len(inputs) != 0 {
		t.Fatalf("inputs=%v err=%v", inputs, err)
	}
}

func TestParseScript_Errors(t *testing.T) {
	for _, bad := range []string{"JUMP", "UP*0", "UP*x", "MOUSE=left", "ENTER+FLY"} {
		if _, err := ParseScript(bad); err == nil {
			t.Errorf("ParseScript(%q): expected error", bad)
		}
	}
}
