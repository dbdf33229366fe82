package credential

// State is the snapshot of one resolution cycle. It is opaque to external
// consumers and exists only to be round-tripped into the next diff/update
// call. Entry order is significant: it mirrors the desired order at
// composition time and participates in equality.
type State struct {
	Algorithm     Algorithm     `json:"algorithm"`
	HashedEntries []HashedEntry `json:"hashedEntries"`
}

// OriginalEntries returns the desired entries this state was resolved from,
// in order.
func (s State) OriginalEntries() []Entry {
	entries := make([]Entry, len(s.HashedEntries))
	for i, he := range s.HashedEntries {
		entries[i] = he.Original
	}
	return entries
}

// PlaintextEntry pairs a username with the password that ended up being
// used for it, whether explicit or generated.
type PlaintextEntry struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Outputs is everything one create/update cycle produces.
type Outputs struct {
	// Result is the credential document: one "username:hash" line per
	// resolved entry, newline-joined, no trailing newline.
	Result string `json:"result"`

	// PlaintextEntries parallels Result line-for-line.
	PlaintextEntries []PlaintextEntry `json:"plaintextEntries"`

	// State feeds the next diff/update cycle.
	State State `json:"state"`
}
