package capypdf

// Header is the fixed PDF 1.7 file header this module always writes:
// the version comment followed by the four-byte high-bit marker that
// tells naive tools the file contains binary data.
var Header = append([]byte("%PDF-1.7\n"), 0xe5, 0xf6, 0xc4, 0xd6, 0x0a)
