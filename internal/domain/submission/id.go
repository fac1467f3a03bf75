package submission

import "github.com/google/uuid"

// IDGenerator produces resource item ids. Ids must not repeat within a
// record's lifetime; a collision would make edits alias between items.
type IDGenerator func() string

// NewID returns a random UUID v4 (122 random bits).
func NewID() string {
	return uuid.NewString()
}

// Normalize repairs a rehydrated record so every resource item has a unique,
// non-empty id. Items written without ids, or sharing an id with an earlier
// item, receive a fresh one. Existing unique ids are never touched. A nil
// resource list becomes an empty one. reissued reports whether any id was
// assigned, in which case the repaired record must be written back.
func Normalize(r Record, newID IDGenerator) (out Record, reissued bool) {
	out = r.Clone()
	if out.Resources == nil {
		out.Resources = []ResourceItem{}
		return out, false
	}

	seen := make(map[string]struct{}, len(out.Resources))
	for i := range out.Resources {
		id := out.Resources[i].ID
		if _, dup := seen[id]; id == "" || dup {
			id = newID()
			out.Resources[i].ID = id
			reissued = true
		}
		seen[id] = struct{}{}
	}
	return out, reissued
}
