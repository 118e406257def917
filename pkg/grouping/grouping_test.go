package grouping

import (
	"math/rand"
	"strings"
	"testing"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		in   string
		sep  string
		want string
	}{
		{in: "", sep: " ", want: ""},
		{in: "1", sep: " ", want: "1"},
		{in: "123", sep: " ", want: "123"},
		{in: "1234", sep: " ", want: "1 234"},
		{in: "1234567", sep: " ", want: "1 234 567"},
		{in: "1234567.891", sep: " ", want: "1 234 567.891"},
		{in: "1234567.", sep: ",", want: "1,234,567."},
		{in: ".5", sep: ",", want: ".5"},
		{in: "-1234", sep: ",", want: "-1,234"},
		{in: "12345", sep: "", want: "12345"},
		{in: "1234567", sep: "'", want: "1'234'567"},
		{in: "1234567", sep: " | ", want: "1 | 234 | 567"},
	}
	for _, tc := range cases {
		if got := Group(tc.in, tc.sep); got != tc.want {
			t.Errorf("Group(%q, %q) = %q, want %q", tc.in, tc.sep, got, tc.want)
		}
	}
}

func TestGroup_Idempotent(t *testing.T) {
	for _, in := range []string{"1", "1234", "1234567890", "98765.4321", "1000000.00"} {
		once := Group(in, " ")
		if twice := Group(once, " "); twice != once {
			t.Errorf("Group(Group(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestUngroup(t *testing.T) {
	if got := Ungroup("1 234 567.00", " "); got != "1234567.00" {
		t.Fatalf("got %q", got)
	}
	if got := Ungroup("12 34", ""); got != "12 34" {
		t.Fatalf("empty separator should be a no-op, got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		var b strings.Builder
		digits := 1 + rng.Intn(15)
		for j := 0; j < digits; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		if rng.Intn(2) == 0 {
			b.WriteString(".")
			for j := rng.Intn(3); j > 0; j-- {
				b.WriteByte(byte('0' + rng.Intn(10)))
			}
		}
		s := b.String()
		for _, sep := range []string{" ", ",", "'", "_"} {
			if got := Ungroup(Group(s, sep), sep); got != s {
				t.Fatalf("Ungroup(Group(%q, %q)) = %q", s, sep, got)
			}
		}
	}
}

func TestFixed(t *testing.T) {
	cases := []struct {
		in     string
		places int
		want   string
		ok     bool
	}{
		{in: "1234567", places: 2, want: "1234567.00", ok: true},
		{in: "12.5", places: 2, want: "12.50", ok: true},
		{in: "12.", places: 2, want: "12.00", ok: true},
		{in: ".5", places: 1, want: "0.5", ok: true},
		{in: "3.14159", places: 3, want: "3.142", ok: true},
		{in: "42abc", places: 0, want: "42", ok: true},
		{in: "abc", places: 2, ok: false},
		{in: "", places: 2, ok: false},
		{in: ".", places: 2, ok: false},
	}
	for _, tc := range cases {
		got, ok := Fixed(tc.in, tc.places)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Fixed(%q, %d) = (%q, %v), want (%q, %v)", tc.in, tc.places, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCountSignificantAndOffsetOf(t *testing.T) {
	grouped := "12 345 678"
	for offset := 0; offset <= len(grouped); offset++ {
		n := CountSignificant(grouped, " ", offset)
		back := OffsetOf(grouped, " ", n)
		if n > 0 && back > offset {
			t.Fatalf("offset %d: count %d maps back to %d", offset, n, back)
		}
	}
	if got := CountSignificant(grouped, " ", 7); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
	if got := OffsetOf(grouped, " ", 5); got != 6 {
		t.Fatalf("offset = %d, want 6", got)
	}
	if got := OffsetOf(grouped, " ", 0); got != 0 {
		t.Fatalf("offset = %d, want 0", got)
	}
	if got := OffsetOf("12", " ", 9); got != 2 {
		t.Fatalf("offset = %d, want 2", got)
	}
}
