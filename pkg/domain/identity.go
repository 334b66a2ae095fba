package domain

// ExtractedIdentity is an identity captured by an upstream extraction
// pipeline, for example OCR over a scanned document. Fields arrive as
// free-form text and are kept verbatim; normalization happens at
// comparison time only.
type ExtractedIdentity struct {
	// Name is the personal name as it appeared on the source document.
	Name string `json:"name"`
	// Identifier is the identity number, possibly with grouping whitespace.
	Identifier string `json:"identifier"`
	// Address is the free-form postal address.
	Address string `json:"address"`
}

// ReferenceRecord is one row of the trusted reference dataset that
// extracted identities are verified against.
type ReferenceRecord struct {
	// Identifier is the key the record is resolved by.
	Identifier string `json:"identifier"`
	// Name is the enrolled personal name.
	Name string `json:"name"`
	// Address is the enrolled postal address.
	Address string `json:"address"`
}
