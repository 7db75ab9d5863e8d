// Package buko implements the record codec for the BUKO fixed-width
// configuration file: parsing slash-delimited diagnostic codes from the GL
// batch job, deriving the booking-error classification, validating field
// contracts, and encoding/decoding the legacy column layout.
package buko

// FieldSpec describes one schema column of the BUKO layout.
type FieldSpec struct {
	Name  string // column name as emitted by the batch job
	Width int    // column width in the encoded line; also the maximum value length
	Fill  string // substituted when the input token is blank; empty means no fill
}

// Schema lists the 14 record fields in wire order. In the encoded line they
// follow the three 20-character classification columns.
var Schema = [14]FieldSpec{
	{Name: "BK", Width: 4},
	{Name: "KONTOBEZ_SOLL", Width: 1, Fill: " "},
	{Name: "KONTOBEZ_HABEN", Width: 1, Fill: " "},
	{Name: "BUCHART", Width: 2},
	{Name: "BETRAGSART", Width: 2},
	{Name: "FORDART", Width: 2, Fill: "  "},
	{Name: "ZAHLART", Width: 2},
	{Name: "GG_KONTOBEZ_SOLL", Width: 1, Fill: " "},
	{Name: "GG_KONTOBEZ_HABEN", Width: 1, Fill: " "},
	{Name: "BBZBETRART", Width: 2, Fill: "  "},
	{Name: "KZVORRUECK", Width: 1, Fill: " "},
	{Name: "FLREVERSED", Width: 1, Fill: " "},
	{Name: "LART", Width: 7},
	{Name: "SOURCE", Width: 10},
}

const (
	classWidth   = 20
	recordOffset = 3 * classWidth // BE_TYPE, BEC1, BEC2 come first

	// LineLength is the total width of a fully encoded BUKO line.
	LineLength = 97
)

const (
	SourceBuBasis   = "BUBASIS"
	SourceBuBaZusatz = "BUBAZUSATZ"
	SourceLeiAufGl  = "LEIAUFGL"
)

// ValidSources is the closed value set accepted for the SOURCE column.
var ValidSources = []string{SourceBuBasis, SourceBuBaZusatz, SourceLeiAufGl}

// IsValidSource reports whether s is a member of the SOURCE value set.
func IsValidSource(s string) bool {
	for _, v := range ValidSources {
		if s == v {
			return true
		}
	}
	return false
}
