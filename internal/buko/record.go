package buko

// Record is one diagnostic code decomposed into the 14 BUKO schema columns.
// Field order mirrors the wire order defined by Schema. Values are kept
// exactly as parsed (including blank fills); a Record is never mutated after
// validation.
type Record struct {
	BK              string
	KontobezSoll    string
	KontobezHaben   string
	Buchart         string
	Betragsart      string
	Fordart         string
	Zahlart         string
	GGKontobezSoll  string
	GGKontobezHaben string
	BBZBetrart      string
	KZVorrueck      string
	FLReversed      string
	Lart            string
	Source          string
}

// Classification is the derived triple computed from KONTOBEZ_SOLL and
// KONTOBEZ_HABEN. It is never supplied independently.
type Classification struct {
	BEType string
	BEC1   string
	BEC2   string
}

// fieldPtrs returns pointers to the record fields in Schema order, so the
// parse, encode, decode, and key paths all walk the same table.
func (r *Record) fieldPtrs() [14]*string {
	return [14]*string{
		&r.BK,
		&r.KontobezSoll,
		&r.KontobezHaben,
		&r.Buchart,
		&r.Betragsart,
		&r.Fordart,
		&r.Zahlart,
		&r.GGKontobezSoll,
		&r.GGKontobezHaben,
		&r.BBZBetrart,
		&r.KZVorrueck,
		&r.FLReversed,
		&r.Lart,
		&r.Source,
	}
}

// Fields returns the schema field values in wire order.
func (r *Record) Fields() [14]string {
	var out [14]string
	ptrs := r.fieldPtrs()
	for i := range ptrs {
		out[i] = *ptrs[i]
	}
	return out
}
