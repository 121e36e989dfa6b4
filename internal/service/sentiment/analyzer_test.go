package sentiment

import "testing"

func TestPolarityPositive(t *testing.T) {
	a := NewAnalyzer()
	if p := a.Polarity("Acme posts strong growth, shares surge"); p <= 0 {
		t.Errorf("polarity = %v, want > 0", p)
	}
}

func TestPolarityNegative(t *testing.T) {
	a := NewAnalyzer()
	if p := a.Polarity("Analysts downgrade Acme after earnings miss and widening loss"); p >= 0 {
		t.Errorf("polarity = %v, want < 0", p)
	}
}

func TestPolarityNeutralWhenNoMatch(t *testing.T) {
	a := NewAnalyzer()
	for _, text := range []string{"", "   ", "Acme schedules annual shareholder meeting"} {
		if p := a.Polarity(text); p != 0 {
			t.Errorf("Polarity(%q) = %v, want 0", text, p)
		}
	}
}

func TestPolarityNegationFlips(t *testing.T) {
	a := NewAnalyzer()
	plain := a.Polarity("strong quarter")
	negated := a.Polarity("not strong quarter")
	if plain <= 0 {
		t.Fatalf("plain = %v, want > 0", plain)
	}
	if negated >= 0 {
		t.Errorf("negated = %v, want < 0", negated)
	}
}

func TestPolarityCaseAndPunctuation(t *testing.T) {
	a := NewAnalyzer()
	if a.Polarity("STRONG growth!") != a.Polarity("strong growth") {
		t.Error("case or punctuation changed the polarity")
	}
}

func TestPolarityBounded(t *testing.T) {
	a := NewAnalyzer()
	texts := []string{
		"surge surge surge surge surge",
		"bankruptcy default bankruptcy default bankruptcy",
	}
	for _, text := range texts {
		if p := a.Polarity(text); p < -1 || p > 1 {
			t.Errorf("Polarity(%q) = %v out of [-1, 1]", text, p)
		}
	}
}

func TestPolarityDeterministic(t *testing.T) {
	a := NewAnalyzer()
	const text = "Acme beats estimates despite weak guidance"
	first := a.Polarity(text)
	for i := 0; i < 10; i++ {
		if a.Polarity(text) != first {
			t.Fatal("polarity not deterministic")
		}
	}
}
