package pagetoken

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		native := rapid.StringN(1, 64, -1).Draw(t, "native")
		got, err := Decode(Encode(native))
		if err != nil {
			t.Fatalf("Decode(Encode(%q)): %v", native, err)
		}
		if got != native {
			t.Fatalf("round trip = %q, want %q", got, native)
		}
	})
}

func TestEmptyTokenIsFirstPage(t *testing.T) {
	t.Parallel()

	if tok := Encode(""); tok != "" {
		t.Fatalf("Encode(\"\") = %q, want empty", tok)
	}
	native, err := Decode("  ")
	if err != nil || native != "" {
		t.Fatalf("Decode(blank) = %q, %v; want empty, nil", native, err)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"badrequest",
		"!!!",
		"MTA",   // "10" without prefix
		"djE6",  // "v1:" with empty cursor
		"v1:10", // raw, not base64
	}
	for _, tok := range cases {
		if _, err := Decode(tok); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q) err = %v, want ErrMalformed", tok, err)
		}
	}
}
