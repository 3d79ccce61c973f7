package utils

import "testing"

func fptr(v float64) *float64 { return &v }

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		promo *float64
		want  int
	}{
		{"no promo", 100, nil, 0},
		{"half off", 100, fptr(50), 50},
		{"rounds", 150, fptr(100), 33},
		{"promo above price", 100, fptr(120), 0},
		{"promo equals price", 100, fptr(100), 0},
		{"free course", 0, fptr(0), 0},
	}
	for _, c := range cases {
		if got := DiscountPercent(c.price, c.promo); got != c.want {
			t.Fatalf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestEffectivePrice(t *testing.T) {
	if got := EffectivePrice(100, fptr(60)); got != 60 {
		t.Fatalf("promo must win when lower, got %v", got)
	}
	if got := EffectivePrice(100, fptr(140)); got != 100 {
		t.Fatalf("promo above list must be ignored, got %v", got)
	}
	if got := EffectivePrice(100, nil); got != 100 {
		t.Fatalf("nil promo must fall back to list, got %v", got)
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  GoLang   Web\tDev "); got != "golang web dev" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeQuery("   "); got != "" {
		t.Fatalf("whitespace-only input must normalize to empty, got %q", got)
	}
}
