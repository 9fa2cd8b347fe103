package pathops

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"M10 0L20 0z", "M10 0L20 0z"},
		{"m10 0l10 0z", "M10 0L20 0z"},
		{"M10 0 20 0z", "M10 0L20 0z"}, // implicit command repetition
		{"M10 0H20V10z", "M10 0L20 0L20 10z"},
		{"m10 0h10v10z", "M10 0L20 0L20 10z"},
		{"M0 0C0 10 10 10 10 0z", "M0 0C0 10 10 10 10 0z"},
		{"M0 0c0 10 10 10 10 0z", "M0 0C0 10 10 10 10 0z"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0z", "M0 0C0 10 10 10 10 0C10 -10 20 -10 20 0z"},
		{"M0 0S10 10 10 0z", "M0 0C0 0 10 10 10 0z"},
		{"M10,0 L20,0 z", "M10 0L20 0z"},
		{"M10 0L20 0", "M10 0L20 0"},
		{"", ""},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.T(t, p.String(), tt.res)
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []string{
		"10 0",     // must start with command
		"MM",       // bad number
		"M10",      // missing coordinate
		"M10 0Q5 5 10 10", // unsupported command
		"A10 0",    // unsupported command
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSVGPath(tt)
			test.That(t, err != nil)
		})
	}
}

func TestMustParseSVGPath(t *testing.T) {
	test.T(t, MustParseSVGPath("M10 0L20 0z").String(), "M10 0L20 0z")

	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParseSVGPath("bad")
}
