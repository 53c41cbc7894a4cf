package comments

import "testing"

func TestRulesStep_Transitions(t *testing.T) {
	r := Compile(DefaultConfig())

	steps := []struct {
		text      string
		wantKeep  bool
		wantWhy   Reason
		wantState State
	}{
		{"/**\n", false, ReasonDocCommentOpen, State{InBlockComment: true, OpenedAt: 0}},
		{" * body // Get x\n", false, ReasonBlockCommentBody, State{InBlockComment: true, OpenedAt: 0}},
		{" */\n", false, ReasonBlockCommentClose, State{SkipNextBlank: true, OpenedAt: 0}},
		{"\n", false, ReasonBlankAfterBlock, State{OpenedAt: 0}},
		{"\n", true, ReasonNone, State{OpenedAt: 0}},
	}

	var st State
	for i, s := range steps {
		var o Outcome
		st, o = r.Step(st, Line{Index: i, Text: s.text})
		if o.Keep != s.wantKeep {
			t.Errorf("step %d: keep = %v, want %v", i, o.Keep, s.wantKeep)
		}
		if o.Reason != s.wantWhy {
			t.Errorf("step %d: reason = %q, want %q", i, o.Reason, s.wantWhy)
		}
		if st != s.wantState {
			t.Errorf("step %d: state = %+v, want %+v", i, st, s.wantState)
		}
	}
}

func TestRulesStep_SkipBlankDisabled(t *testing.T) {
	r := Compile(&Config{StripDocComments: true})

	st, _ := r.Step(State{InBlockComment: true}, Line{Text: "*/\n"})
	if st.SkipNextBlank {
		t.Fatal("expected SkipNextBlank to stay false when disabled")
	}

	_, o := r.Step(st, Line{Text: "\n"})
	if !o.Keep {
		t.Error("expected blank line to be kept")
	}
}

func TestRulesStep_NoiseAndInlineAreIndependent(t *testing.T) {
	cfg := &Config{
		StripInlineMarkers: true,
		InlineMarkers:      []string{"Note:"},
	}
	r := Compile(cfg)

	// Noise stripping is off, so the inline table decides.
	_, o := r.Step(State{}, Line{Text: "// Note: explained\n"})
	if !o.Keep || o.Text != "\n" || o.Reason != ReasonInlineMarker {
		t.Errorf("unexpected outcome %+v", o)
	}
}

func TestRulesStep_MarkersAreLiteral(t *testing.T) {
	cfg := &Config{
		StripNoisePrefixes: true,
		NoisePrefixes:      []string{"a.b"},
	}
	r := Compile(cfg)

	if _, o := r.Step(State{}, Line{Text: "// axb\n"}); !o.Keep {
		t.Error("expected '.' in marker to match literally")
	}
	if _, o := r.Step(State{}, Line{Text: "// a.b\n"}); o.Keep {
		t.Error("expected literal marker to match")
	}
}

func TestRulesStep_PrefixMatch(t *testing.T) {
	r := Compile(DefaultConfig())

	tests := []struct {
		text string
		want string
	}{
		{"return x; // Returns the value\n", "return x; \n"},
		{"call(); // Calls home\n", "call(); // Calls home\n"},
		{"y++; // Add to total\n", "y++; \n"},
		{"y++; // Addition\n", "y++; // Addition\n"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, o := r.Step(State{}, Line{Text: tt.text})
			if !o.Keep {
				t.Fatalf("expected line to be kept, got %+v", o)
			}
			if o.Text != tt.want {
				t.Errorf("got %q, want %q", o.Text, tt.want)
			}
		})
	}
}

func TestRulesStep_OpenerInsideBlockIsBody(t *testing.T) {
	r := Compile(DefaultConfig())

	st, o := r.Step(State{InBlockComment: true, OpenedAt: 3}, Line{Index: 5, Text: "/** nested\n"})
	if o.Keep || o.Reason != ReasonBlockCommentBody {
		t.Errorf("unexpected outcome %+v", o)
	}
	if st.OpenedAt != 3 {
		t.Errorf("expected OpenedAt to stay 3, got %d", st.OpenedAt)
	}
}

func TestCompile_NilUsesDefault(t *testing.T) {
	r := Compile(nil)
	if r.noise == nil || r.inline == nil {
		t.Error("expected default tables to be compiled")
	}
}

func TestCompile_EmptyTables(t *testing.T) {
	r := Compile(&Config{StripNoisePrefixes: true, StripInlineMarkers: true})
	if r.noise != nil || r.inline != nil {
		t.Error("expected no patterns for empty marker tables")
	}
}
