package input

import (
	"strconv"
	"strings"
)

// parseOSC4 parses an OSC 4 ("get/set palette color") reply body of the
// form "4;<index>;<colorspec>", plus urxvt's two-part "4;<desc>" form,
// which names a color by description instead of palette index and
// reports Index: -1. The raw descriptor string is always preserved
// alongside whatever RGB value parseColorSpec manages to extract from
// it, since descriptive forms ("rgbi:...", bare color names) do not all
// reduce to RGB.
func parseOSC4(body string) Event {
	parts := strings.SplitN(body, ";", 3)
	if len(parts) < 2 {
		return RawEvent{Data: []byte(body)}
	}

	idx := -1
	desc := parts[1]
	if len(parts) == 3 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			idx = n
			desc = parts[2]
		} else {
			desc = strings.Join(parts[1:], ";")
		}
	}

	r, g, b, _ := parseColorSpec(desc)
	return PaletteColorReportEvent{Index: idx, R: r, G: g, B: b, Raw: desc}
}

// parseOSCColorSlot parses an OSC 10/11/12/13/14/17/19/705-708 reply
// body, which carries only the colorspec (no index field).
func parseOSCColorSlot(slot, colorspec string) Event {
	r, g, b, ok := parseColorSpec(colorspec)
	if !ok {
		return RawEvent{Data: []byte(colorspec)}
	}
	return ColorSlotReportEvent{Slot: slot, R: r, G: g, B: b}
}

// parseColorSpec parses either the X11 "rgb:rrrr/gggg/bbbb" form (each
// channel 1-4 hex digits, scaled to 16 bits) or a plain "#rrggbb" form.
func parseColorSpec(s string) (r, g, b uint16, ok bool) {
	if strings.HasPrefix(s, "rgb:") {
		channels := strings.Split(s[len("rgb:"):], "/")
		if len(channels) != 3 {
			return 0, 0, 0, false
		}
		vals := make([]uint16, 3)
		for i, c := range channels {
			v, err := strconv.ParseUint(c, 16, 32)
			if err != nil {
				return 0, 0, 0, false
			}
			vals[i] = scaleToUint16(uint32(v), len(c))
		}
		return vals[0], vals[1], vals[2], true
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		rv, err1 := strconv.ParseUint(s[1:3], 16, 16)
		gv, err2 := strconv.ParseUint(s[3:5], 16, 16)
		bv, err3 := strconv.ParseUint(s[5:7], 16, 16)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, 0, 0, false
		}
		return uint16(rv) << 8, uint16(gv) << 8, uint16(bv) << 8, true
	}
	return 0, 0, 0, false
}

// scaleToUint16 scales a value expressed with digits hex digits up to
// the full 16-bit range, the way X11 color specs of fewer than 4 digits
// are conventionally scaled.
func scaleToUint16(v uint32, digits int) uint16 {
	switch digits {
	case 1:
		return uint16(v * 0x1111)
	case 2:
		return uint16(v * 0x0101)
	case 3:
		return uint16(v*0x10 + v/0x100)
	default:
		return uint16(v)
	}
}
