package input

// decodeMouseButtonByte decodes the raw button+modifier byte shared by
// the legacy and urxvt mouse encodings (both carry it as a single
// value with bit 6 marking wheel events and bit 5 marking motion),
// grounded on the reference parser's handleMouse bit layout.
func decodeMouseButtonByte(raw int) (action MouseAction, button int, mods Modifiers) {
	if raw&4 != 0 {
		mods |= Shift
	}
	if raw&8 != 0 {
		mods |= Meta
	}
	if raw&16 != 0 {
		mods |= Ctrl
	}
	motion := raw&32 != 0

	if raw&64 != 0 {
		if raw&1 != 0 {
			action = MouseWheelDown
		} else {
			action = MouseWheelUp
		}
		button = -1
		return
	}

	btn := raw & 3
	switch {
	case motion:
		action = MouseMove
		button = btn
		if btn == 3 {
			button = -1
		}
	case btn == 3:
		action = MouseRelease
		button = -1
	default:
		action = MousePress
		button = btn
	}
	return
}

// decodeLegacyMouse decodes "CSI M Cb Cx Cy", the original X10/xterm
// mouse protocol: three raw bytes, each offset by 32, coordinates
// additionally 1-based.
func decodeLegacyMouse(cb, cx, cy byte) MouseEvent {
	return decodeLegacyMouseCoords(int(cb), int(cx), int(cy))
}

// decodeLegacyMouseCoords is decodeLegacyMouse generalized to plain
// ints, for the utf8-multibyte mouse mode where coordinates are decoded
// UTF-8 code points rather than single bytes and so can exceed 255,
// lifting the 223-column/row ceiling the single-byte form has.
func decodeLegacyMouseCoords(cb, cx, cy int) MouseEvent {
	raw := cb - 32
	action, button, mods := decodeMouseButtonByte(raw)
	return MouseEvent{
		Action:    action,
		Button:    button,
		Col:       cx - 32 - 1,
		Row:       cy - 32 - 1,
		Modifiers: mods,
		Raw:       raw,
	}
}

// decodeSGRMouse decodes "CSI < btn ; col ; row M" (press/motion) or
// the same with final byte 'm' (release). Unlike the legacy encoding,
// SGR carries coordinates as plain 1-based decimal parameters with no
// arbitrary byte-value ceiling, and uses the final byte rather than a
// button-code bit to distinguish release.
func decodeSGRMouse(btn, col, row int, isRelease bool) MouseEvent {
	var mods Modifiers
	if btn&4 != 0 {
		mods |= Shift
	}
	if btn&8 != 0 {
		mods |= Meta
	}
	if btn&16 != 0 {
		mods |= Ctrl
	}
	motion := btn&32 != 0

	var action MouseAction
	var button int
	switch {
	case btn&64 != 0:
		if btn&1 != 0 {
			action = MouseWheelDown
		} else {
			action = MouseWheelUp
		}
		button = -1
	case isRelease:
		action = MouseRelease
		button = btn & 3
	case motion:
		action = MouseMove
		button = btn & 3
		if button == 3 {
			button = -1
		}
	default:
		action = MousePress
		button = btn & 3
	}

	return MouseEvent{
		Action:    action,
		Button:    button,
		Col:       col - 1,
		Row:       row - 1,
		Modifiers: mods,
		Raw:       btn,
	}
}

// decodeURXVTMouse decodes "CSI btn ; col ; row M", urxvt's plain
// decimal variant of the legacy protocol (same bit layout as legacy,
// but btn/col/row are ordinary decimal parameters rather than raw
// bytes; btn still carries the legacy +32 offset, col/row are plain
// 1-based values).
func decodeURXVTMouse(btn, col, row int) MouseEvent {
	raw := btn - 32
	action, button, mods := decodeMouseButtonByte(raw)
	return MouseEvent{
		Action:    action,
		Button:    button,
		Col:       col - 1,
		Row:       row - 1,
		Modifiers: mods,
		Raw:       raw,
	}
}
