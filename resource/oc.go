package resource

import pdfcore "github.com/Conan-Kudo/capypdf"

// ocgEntry backs one optional content group: its own dictionary object
// plus the membership state recorded for the catalog's /OCProperties.
type ocgEntry struct {
	objNum      int
	name        string
	defaultOn   bool
}

// AddOptionalContentGroup embeds an OCG dictionary and registers it in
// the default configuration's /ON or /OFF array, matching spec §4.5's
// "optional content groups, visible by default unless stated
// otherwise".
func (r *Registry) AddOptionalContentGroup(name string, defaultOn bool) (pdfcore.OptionalContentGroupID, error) {
	dict := pdfcore.Dict{
		"Type": pdfcore.Name("OCG"),
		"Name": pdfcore.TextString(name),
	}
	num, err := r.w.WriteIndirect(dict)
	if err != nil {
		return 0, err
	}
	r.ocgs = append(r.ocgs, ocgEntry{objNum: num, name: name, defaultOn: defaultOn})
	return pdfcore.OptionalContentGroupID(len(r.ocgs)), nil
}

// OCGObjectNumber resolves an OptionalContentGroupID to its object
// number.
func (r *Registry) OCGObjectNumber(id pdfcore.OptionalContentGroupID) (int, error) {
	i := int(id) - 1
	if i < 0 || i >= len(r.ocgs) {
		return 0, badID("optional content group", int(id))
	}
	return r.ocgs[i].objNum, nil
}

// OCProperties builds the catalog's /OCProperties dictionary from every
// OCG registered so far. Returns nil if none were registered, so the
// catalog can omit the key entirely.
func (r *Registry) OCProperties() pdfcore.Dict {
	if len(r.ocgs) == 0 {
		return nil
	}
	all := make(pdfcore.Array, 0, len(r.ocgs))
	on := make(pdfcore.Array, 0, len(r.ocgs))
	off := make(pdfcore.Array, 0, len(r.ocgs))
	for _, g := range r.ocgs {
		ref := pdfcore.Ref(g.objNum)
		all = append(all, ref)
		if g.defaultOn {
			on = append(on, ref)
		} else {
			off = append(off, ref)
		}
	}
	d := pdfcore.Dict{
		"OCGs": all,
		"D": pdfcore.Dict{
			"ON":      on,
			"OFF":     off,
			"BaseState": pdfcore.Name("ON"),
		},
	}
	return d
}
