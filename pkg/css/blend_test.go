package css

import "testing"

func TestParseBlendMode(t *testing.T) {
	tests := map[string]BlendMode{
		"multiply":    BlendMultiply,
		" Screen ":    BlendScreen,
		"color-dodge": BlendColorDodge,
		"luminosity":  BlendLuminosity,
		"normal":      BlendNormal,
		"":            BlendNormal,
		"bogus":       BlendNormal,
	}
	for input, want := range tests {
		if got := ParseBlendMode(input); got != want {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestBlendMode_String(t *testing.T) {
	if s := BlendHardLight.String(); s != "hard-light" {
		t.Errorf("String() = %q", s)
	}
	if s := BlendMode(200).String(); s != "normal" {
		t.Errorf("out of range String() = %q", s)
	}
}
