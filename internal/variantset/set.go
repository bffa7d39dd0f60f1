package variantset

// Set is a labeled set of variant identities built from one input
// file. The label is the input's base filename with the recognized
// extension stripped.
type Set struct {
	Label   string
	members map[Identity]struct{}
}

// New returns an empty set with the given label.
func New(label string) *Set {
	return &Set{
		Label:   label,
		members: make(map[Identity]struct{}),
	}
}

// Add inserts an identity. Duplicates collapse naturally.
func (s *Set) Add(id Identity) {
	s.members[id] = struct{}{}
}

// Contains reports whether the identity is a member.
func (s *Set) Contains(id Identity) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of distinct identities.
func (s *Set) Len() int {
	return len(s.members)
}

// Identities returns the members in unspecified order.
func (s *Set) Identities() []Identity {
	ids := make([]Identity, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	return ids
}
