package css

import "testing"

func TestParseInlineStyle_SingleProperty(t *testing.T) {
	style := ParseInlineStyle("color: red")
	value, ok := style.Get("color")
	if !ok || value != "red" {
		t.Error("expected color='red'")
	}
}

func TestParseInlineStyle_MultipleProperties(t *testing.T) {
	style := ParseInlineStyle("background-color: red; font-size: 20px")
	color, _ := style.Get(BackgroundColor)
	size, _ := style.Get(FontSize)
	if color != "red" || size != "20px" {
		t.Error("expected both properties to parse")
	}
}

func TestParseInlineStyle_BackgroundImage(t *testing.T) {
	s := ParseInlineStyle("background-image: url(data:image/png;base64,abc123)")
	value := s.Value(BackgroundImage)
	if url, ok := ParseURLValue(value); !ok || url != "data:image/png;base64,abc123" {
		t.Errorf("background-image: got %q", value)
	}
}

func TestGetFontSize(t *testing.T) {
	s := NewStyle()
	if got := s.GetFontSize(); got != DefaultFontSize {
		t.Errorf("default font size = %v", got)
	}
	s.Set(FontSize, "20px")
	if got := s.GetFontSize(); got != 15 {
		t.Errorf("font size = %v, want 15", got)
	}
	s.Set(FontSize, "larger")
	if got := s.GetFontSize(); got != DefaultFontSize {
		t.Errorf("unparsable font size = %v", got)
	}
}

func TestExpandBackgroundShorthand_URLAndColor(t *testing.T) {
	s := NewStyle()
	expandShorthand(s, "background", "red url(bg.png) no-repeat")

	if v := s.Value(BackgroundImage); v != "url(bg.png)" {
		t.Errorf("background-image: got %q", v)
	}
	if v := s.Value(BackgroundColor); v != "red" {
		t.Errorf("background-color: got %q", v)
	}
	if v := s.Value(BackgroundRepeat); v != "no-repeat" {
		t.Errorf("background-repeat: got %q", v)
	}
}

func TestExpandBackgroundShorthand_ColorOnly(t *testing.T) {
	s := NewStyle()
	expandShorthand(s, "background", "yellow")

	if v := s.Value(BackgroundColor); v != "yellow" {
		t.Errorf("background-color: got %q", v)
	}
	if _, ok := s.Get(BackgroundImage); ok {
		t.Error("expected no background-image for color-only background")
	}
	if _, ok := s.Get(BackgroundRepeat); ok {
		t.Error("expected no background-repeat for color-only background")
	}
}

func TestExpandBackgroundShorthand_WithPosition(t *testing.T) {
	s := NewStyle()
	expandShorthand(s, "background", "url(sprite.png) -46px 0 no-repeat")

	if v := s.Value(BackgroundPosition); v != "-46px 0" {
		t.Errorf("background-position: got %q", v)
	}
}

func TestExpandBackgroundShorthand_Layers(t *testing.T) {
	s := ParseInlineStyle("background: url(a.png) repeat-x, linear-gradient(to right, red, rgb(0, 0, 255)) #fff")

	if v := s.Value(BackgroundImage); v != "url(a.png), linear-gradient(to right, red, rgb(0, 0, 255))" {
		t.Errorf("background-image: got %q", v)
	}
	if v := s.Value(BackgroundRepeat); v != "repeat-x, repeat" {
		t.Errorf("background-repeat: got %q", v)
	}
	if v := s.Value(BackgroundColor); v != "#fff" {
		t.Errorf("background-color: got %q", v)
	}
}
