package moniker

import "testing"

// seq is a minimal Sequence that is not a Name.
type seq struct {
	d     rune
	parts []string
}

func (s seq) Delimiter() rune   { return s.d }
func (s seq) NoComponents() int { return len(s.parts) }
func (s seq) Component(i int) (string, error) {
	if err := requireIndex("component", i, len(s.parts)); err != nil {
		return "", err
	}
	return s.parts[i], nil
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Sequence
		want bool
	}{
		{"array vs string", MustArrayName([]string{"a.b", "c"}), MustStringName(`a\.b.c`), true},
		{"name vs foreign", MustStringName("a.b"), seq{'.', []string{"a", "b"}}, true},
		{"empty", Name{}, MustStringName(""), true},
		{"count", MustArrayName([]string{"a"}), MustArrayName([]string{"a", "b"}), false},
		{"delimiter", MustArrayName([]string{"a"}), MustArrayName([]string{"a"}, WithDelimiter('/')), false},
		{"component", MustArrayName([]string{"a", "b"}), MustArrayName([]string{"a", "c"}), false},
		{"empty vs single empty", MustArrayName(nil), MustArrayName([]string{""}), false},
		{"nil", MustArrayName(nil), nil, false},
		{"both nil", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashCode_AgreesWithEqual(t *testing.T) {
	pairs := [][2]Sequence{
		{MustArrayName([]string{"a.b", `c\d`}), MustStringName(`a\.b.c\\d`)},
		{MustArrayName(nil, WithDelimiter('#')), MustStringName("", WithDelimiter('#'))},
		{MustStringName("x.y"), seq{'.', []string{"x", "y"}}},
	}

	for _, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Fatalf("pair %v should be equal", p)
		}
		if HashCode(p[0]) != HashCode(p[1]) {
			t.Errorf("HashCode differs for equal sequences %v", p)
		}
	}
}

func TestHashCode_Distinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b Sequence
	}{
		{"boundaries", MustArrayName([]string{"ab"}), MustArrayName([]string{"a", "b"})},
		{"order", MustArrayName([]string{"a", "b"}), MustArrayName([]string{"b", "a"})},
		{"delimiter", MustArrayName([]string{"a"}), MustArrayName([]string{"a"}, WithDelimiter('/'))},
		{"empty component", MustArrayName(nil), MustArrayName([]string{""})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if HashCode(tt.a) == HashCode(tt.b) {
				t.Errorf("HashCode(%v) == HashCode(%v)", tt.a, tt.b)
			}
		})
	}
}

// brokenSeq reports more components than it can return.
type brokenSeq struct {
	seq
	claimed int
}

func (b brokenSeq) NoComponents() int { return b.claimed }

func TestHashCode_UnreadableComponent(t *testing.T) {
	short := seq{'.', []string{"a"}}
	broken := brokenSeq{seq: short, claimed: 2}

	if Equal(short, broken) {
		t.Fatal("sequences with different counts should not be equal")
	}
	if HashCode(short) == HashCode(broken) {
		t.Error("an unreadable component should change the hash code")
	}
}

func TestHashCode_Nil(t *testing.T) {
	if HashCode(nil) != 0 {
		t.Error("HashCode(nil) should be 0")
	}
}
