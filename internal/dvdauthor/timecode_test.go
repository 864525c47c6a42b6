package dvdauthor

import (
	"errors"
	"testing"
)

func TestBuildTime(t *testing.T) {
	cases := []struct {
		name       string
		num, denom int64
		want       uint32
	}{
		{"pal 10s", 10 * 90000, 90000, 0x00001040},
		{"ntsc 1s", 90090, 90090, 0x000001C0},
		{"pal 1h2m3s13f", 3723*90000 + 13*3600, 90000, 0x01020353},
		{"zero", 0, 90000, 0x00000040},
		{"ntsc 29 frames", 29 * 3003, 90090, 0x000000E9},
	}
	for _, tc := range cases {
		if got := BuildTime(tc.num, tc.denom); got != tc.want {
			t.Fatalf("%s: BuildTime = %#08x, want %#08x", tc.name, got, tc.want)
		}
	}
}

func TestDecodeTimeRoundTrip(t *testing.T) {
	for _, ticks := range []int64{0, 3600, 900000, 946800, 3723*90000 + 24*3600} {
		if got := DecodeTime(BuildTime(ticks, 90000)); got != ticks {
			t.Fatalf("DecodeTime(BuildTime(%d)) = %d", ticks, got)
		}
	}
	if got := DecodeTime(BuildTime(5*90090, 90090)); got != 5*90000 {
		t.Fatalf("ntsc 5s decoded to %d, want %d", got, 5*90000)
	}
}

func TestGroupFrameRate(t *testing.T) {
	a, buf := newTestAuthor(t)
	vg := a.NewPGCGroup(TitleSet).VobGroup()
	if vg.RateCode() != FrameRateNTSC || vg.FramePTS() != 3003 {
		t.Fatalf("default rate = %v (%d)", vg.RateCode(), vg.FramePTS())
	}

	pal := New(Options{Logger: a.log, DefaultFrameRate: FrameRatePAL}).NewPGCGroup(TitleSet).VobGroup()
	if pal.RateDenominator() != 90000 || pal.FramePTS() != 3600 {
		t.Fatalf("pal denominator = %d, frame = %d", pal.RateDenominator(), pal.FramePTS())
	}
	if got := pal.BuildTimeEven(10 * 90000); got != 0x00001040 {
		t.Fatalf("BuildTimeEven = %#08x", got)
	}

	if _, err := vg.SetVideoFrameRate(FrameRate24); err != nil {
		t.Fatalf("SetVideoFrameRate: %v", err)
	}
	if vg.FramePTS() != 3750 {
		t.Fatalf("film FramePTS = %d, want 3750", vg.FramePTS())
	}
	if countLines(buf, "not a valid DVD frame rate") != 1 {
		t.Fatalf("missing frame rate warning\n%s", buf.String())
	}
	if conflict, err := vg.SetVideoFrameRate(FrameRatePAL); err != nil || !conflict {
		t.Fatalf("conflicting frame rate accepted")
	}
	if countLines(buf, "not a valid DVD frame rate") != 1 {
		t.Fatalf("frame rate warning repeated")
	}
}

func TestSetVideoFrameRateRejectsReservedCodes(t *testing.T) {
	a, _ := newTestAuthor(t)
	vg := a.NewPGCGroup(TitleSet).VobGroup()
	for _, rate := range []FrameRate{FrameRateNone, 9, 15, 200} {
		if _, err := vg.SetVideoFrameRate(rate); !errors.Is(err, ErrUnknownAttribute) {
			t.Fatalf("SetVideoFrameRate(%d) = %v, want %v", rate, err, ErrUnknownAttribute)
		}
	}
	if vg.Video().FrameRate != FrameRateNone {
		t.Fatalf("reserved code was stored: %d", vg.Video().FrameRate)
	}
	if vg.RateDenominator() != 90090 || vg.FramePTS() != 3003 {
		t.Fatalf("rate after reserved codes = %d/%d", vg.RateDenominator(), vg.FramePTS())
	}
}

func TestRateCodeIgnoresOutOfTableDefault(t *testing.T) {
	a, _ := newTestAuthor(t)
	vg := New(Options{Logger: a.log, DefaultFrameRate: 9}).NewPGCGroup(TitleSet).VobGroup()
	if got := vg.RateCode(); got != FrameRateNTSC {
		t.Fatalf("RateCode = %v, want ntsc", got)
	}
	if got := vg.BuildTimeEven(90090); got != 0x000001C0 {
		t.Fatalf("BuildTimeEven = %#08x", got)
	}
}
