package database

// Collection names, one per entity. An explicit registry keeps the
// entity-to-namespace convention in one place instead of deriving it
// from type names.
const (
	CollectionEvent = "event"
	CollectionRsvp  = "rsvp"

	// CollectionUser is reserved for the User schema, which has no
	// endpoints yet.
	CollectionUser = "user"
)
