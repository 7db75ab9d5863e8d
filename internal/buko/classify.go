package buko

// Classify derives the classification triple from KONTOBEZ_SOLL and
// KONTOBEZ_HABEN. Rules are evaluated top to bottom and the first match
// wins: an "S" on either side takes the claim branch even when the other
// side holds "V". Total over any two strings.
func Classify(soll, haben string) Classification {
	switch {
	case soll == "S" || haben == "S":
		return Classification{BEType: "CLAIM", BEC1: "CLAIM ERROR", BEC2: "ERROR"}
	case soll == "V" || haben == "V":
		return Classification{BEType: "PAYMENT", BEC1: "CONTRACT ERROR", BEC2: "ERROR"}
	default:
		return Classification{BEType: "REBOOKING", BEC1: "OTHER ACC ERROR", BEC2: "ERROR"}
	}
}
