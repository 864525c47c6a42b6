package dvdauthor

// Per frame rate code: PTS units per second and the even display rate.
var (
	rateDenom = [9]int64{0, 90090, 90000, 90000, 90090, 90000, 90000, 90090, 90000}
	evenRate  = [9]int64{0, 24, 24, 25, 30, 30, 50, 60, 60}
)

const (
	timecodeRatePAL  = 1
	timecodeRateNTSC = 3
)

func toBCD(v int64) uint32 {
	return uint32((v/10)*16 + v%10)
}

func fromBCD(v byte) int64 {
	return int64((v>>4)*10 + (v & 0x0F))
}

// BuildTime packs num/denom seconds into a DVD BCD timecode
// (hh:mm:ss:ff with the frame rate flag in bits 6-7 of the frame byte).
// A denominator of 90090 selects 30 fps, anything else 25 fps. The value
// is rounded to the nearest frame.
func BuildTime(num, denom int64) uint32 {
	frate, rc := int64(25), uint32(timecodeRatePAL)
	if denom == 90090 {
		frate, rc = 30, timecodeRateNTSC
	}
	num += denom/(frate*2) + 1
	sec := num / denom
	min := sec / 60
	hr := toBCD(min / 60)
	mn := toBCD(min % 60)
	sc := toBCD(sec % 60)
	num %= denom
	fr := toBCD(num * frate / denom)
	return hr<<24 | mn<<16 | sc<<8 | fr | rc<<6
}

// DecodeTime converts a BCD timecode back into 90 kHz ticks.
func DecodeTime(tc uint32) int64 {
	h := fromBCD(byte(tc >> 24))
	m := fromBCD(byte(tc >> 16))
	s := fromBCD(byte(tc >> 8))
	frame := fromBCD(byte(tc) & 0x3F)
	ticks := (h*3600 + m*60 + s) * 90000
	switch (tc >> 6) & 0x03 {
	case timecodeRatePAL:
		ticks += frame * 3600
	case timecodeRateNTSC:
		ticks += frame * 3000
	}
	return ticks
}

// RateCode is the negotiated frame rate, or the configured default when
// none was detected.
func (vg *VobGroup) RateCode() FrameRate {
	if r := vg.video.frameRate.get(); r != FrameRateNone && r <= FrameRate60 {
		return r
	}
	if vg.defaultRate != FrameRateNone && vg.defaultRate <= FrameRate60 {
		return vg.defaultRate
	}
	return FrameRateNTSC
}

func (vg *VobGroup) RateDenominator() int64 {
	return rateDenom[vg.RateCode()]
}

// FramePTS is the duration of one display frame in PTS units.
func (vg *VobGroup) FramePTS() int64 {
	rc := vg.RateCode()
	return rateDenom[rc] / evenRate[rc]
}

// BuildTimeEven encodes num using the group's frame rate denominator.
func (vg *VobGroup) BuildTimeEven(num int64) uint32 {
	return BuildTime(num, vg.RateDenominator())
}
