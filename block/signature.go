package block

// MarkerKind distinguishes the three placement markers recognized in
// source text.
type MarkerKind int

const (
	MarkerSignature MarkerKind = iota
	MarkerInitials
	MarkerNotary
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerSignature:
		return "signature"
	case MarkerInitials:
		return "initials"
	case MarkerNotary:
		return "notary"
	}
	return "unknown"
}

// Marker records where a placement marker appeared in the source text.
type Marker struct {
	Kind  MarkerKind
	ID    string
	Raw   string // the marker line exactly as written
	Line  int    // 0-based line index in the source
	Start int    // byte offset of the marker line
	End   int    // byte offset one past the marker line
}

// LineType selects the rule drawn for a party: a full signature line or a
// short initials line.
type LineType int

const (
	SignatureLine LineType = iota
	InitialsLine
)

// NotaryInfo holds the acknowledgment fields for a notary party.
type NotaryInfo struct {
	County            string
	State             string
	CommissionNumber  string
	CommissionExpires string
}

// Party is one signer within a signature block.
type Party struct {
	Role     string
	Name     string
	Title    string
	Company  string
	Date     string
	LineType LineType
	Notary   *NotaryInfo
}

// Arrangement is the column convention for a signature block.
type Arrangement int

const (
	Single Arrangement = iota
	SideBySide
)

// SignatureData is the resolved content of a signature block: the marker
// it came from, the column arrangement, the parties, and whether a notary
// acknowledgment follows the party columns.
type SignatureData struct {
	Marker         Marker
	Layout         Arrangement
	Parties        []Party
	NotaryRequired bool
}
