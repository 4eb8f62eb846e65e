package font

import "sort"

const maxSubsetSize = 255 // local codes 1..255; 0 stays .notdef

const subsetModulus = 26 * 26 * 26 * 26 * 26 * 26

// GetSubsetTag constructs a 6-letter tag (AAAAAA to ZZZZZZ) identifying
// a subset by the glyphs it contains, for use in a /BaseFont entry
// ("<TAG>+<PostScriptName>").
func GetSubsetTag(gg []GlyphID, numGlyphs int) string {
	sorted := make([]GlyphID, len(gg))
	copy(sorted, gg)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	x := uint32(numGlyphs)
	for _, g := range sorted {
		x = (x*11 + uint32(g)) % subsetModulus
	}

	var buf [6]byte
	for i := range buf {
		buf[i] = 'A' + byte(x%26)
		x /= 26
	}
	return string(buf[:])
}

// Subset is one ≤255-glyph slice of a font, assigned local single-byte
// codes in the order glyphs were first requested.
type Subset struct {
	Tag        string
	Glyphs     []GlyphID       // index 0 is always .notdef
	localCode  map[GlyphID]byte
	runeOfCode map[byte]rune
}

func newSubset() *Subset {
	return &Subset{
		Glyphs:     []GlyphID{0},
		localCode:  map[GlyphID]byte{0: 0},
		runeOfCode: map[byte]rune{},
	}
}

// LocalCode returns the subset-local single-byte code for gid, and
// whether gid is already a member of this subset.
func (s *Subset) LocalCode(gid GlyphID) (byte, bool) {
	c, ok := s.localCode[gid]
	return c, ok
}

// RuneForCode returns the source rune mapped to a local code, for
// ToUnicode CMap construction.
func (s *Subset) RuneForCode(code byte) (rune, bool) {
	r, ok := s.runeOfCode[code]
	return r, ok
}

func (s *Subset) full() bool {
	return len(s.Glyphs) > maxSubsetSize
}

func (s *Subset) add(gid GlyphID, r rune) byte {
	code := byte(len(s.Glyphs))
	s.Glyphs = append(s.Glyphs, gid)
	s.localCode[gid] = code
	s.runeOfCode[code] = r
	return code
}

// Manager assigns codepoints to (subset index, local code) pairs for a
// single Font, creating a new subset lazily whenever the current one
// has reached 255 glyphs, per the module's object-count budget.
type Manager struct {
	font    *Font
	subsets []*Subset
}

// NewManager creates an empty subset manager for f.
func NewManager(f *Font) *Manager {
	return &Manager{font: f}
}

// Use maps r to a (subset index, local code) pair, creating the glyph
// entry and, if needed, a new subset. ok is false if the font has no
// glyph for r.
func (m *Manager) Use(r rune) (subsetIdx int, code byte, ok bool) {
	gid, has := m.font.GlyphForRune(r)
	if !has {
		return 0, 0, false
	}

	for i, s := range m.subsets {
		if c, found := s.LocalCode(gid); found {
			return i, c, true
		}
	}

	cur := len(m.subsets) - 1
	if cur < 0 || m.subsets[cur].full() {
		s := newSubset()
		m.subsets = append(m.subsets, s)
		cur = len(m.subsets) - 1
	}
	s := m.subsets[cur]
	code = s.add(gid, r)
	s.Tag = GetSubsetTag(s.Glyphs, m.font.NumGlyphs())
	return cur, code, true
}

// Subsets returns every subset built so far, in creation order.
func (m *Manager) Subsets() []*Subset {
	return m.subsets
}

// Font returns the underlying font being subsetted.
func (m *Manager) Font() *Font {
	return m.font
}
