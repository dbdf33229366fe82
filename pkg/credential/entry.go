package credential

// Entry is a desired username/password declaration. The password is
// optional; when unset, resolution generates a random one.
//
// Entries with duplicate usernames are legal and are resolved independently.
type Entry struct {
	Username string   `json:"username"`
	Password Password `json:"password"`
}

// Equal reports field-wise equality, including the three-state password
// semantics. It is the matching key for both diff and carry-over.
func (e Entry) Equal(other Entry) bool {
	return e.Username == other.Username && e.Password.Equal(other.Password)
}

// EntriesEqual reports order-sensitive, field-wise equality of two entry
// lists.
func EntriesEqual(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// HashedEntry is a fully resolved entry.
//
// Invariant: Hash is exactly the engine output for (Original.Username,
// ResolvedPassword, the state's algorithm). A HashedEntry is carried over to
// a new cycle only while its Original entry is unchanged, so the invariant
// never drifts.
type HashedEntry struct {
	Original         Entry  `json:"original"`
	ResolvedPassword string `json:"resolvedPassword"`
	Hash             string `json:"hash"`
}

// Spec is the desired input for one create/diff/update operation.
type Spec struct {
	Entries   []Entry
	Algorithm Algorithm
}

// EffectiveAlgorithm returns the spec's algorithm with the default applied.
func (s Spec) EffectiveAlgorithm() Algorithm {
	return s.Algorithm.OrDefault()
}
