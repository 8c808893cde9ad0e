// Package utf8x provides the UTF-8 byte-stream utilities the input
// decoder and display grid share: leading-byte sequence-length lookup,
// strict decoding with explicit error signalling, encoding, and the
// UTF-16 surrogate-pair split used when code points must cross an API
// boundary that only carries 16-bit units.
//
// It additionally accepts the legacy 5- and 6-byte UTF-8 forms (code
// points up to 0x7FFFFFFF) that RFC 3629 later withdrew, because some
// terminals still emit them; stdlib unicode/utf8 rejects these
// outright, so utf8x layers extended decoding on top of it rather than
// replacing it.
package utf8x
