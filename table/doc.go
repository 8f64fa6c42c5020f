// Package table provides a slot table addressed by typed handles.
//
// A Table stores values of one type in a slice and hands out
// generational handles tagged with the table's identifier space:
//
//	type user struct{}
//
//	users := table.New[user, *User]()
//	h := users.Insert(u)
//
//	u, ok := users.Get(h)
//	users.Remove(h)
//	_, ok = users.Get(h) // false: the slot's generation moved on
//
// # Slot Reuse
//
// Removed slots are recycled. Every removal bumps the slot's generation,
// so a handle to a removed value never resolves to whatever occupies the
// slot next. Lookup distinguishes the two failure modes:
//
//	_, err := users.Lookup(h)
//	errors.Is(err, &errors.Error{Phase: errors.PhaseLookup, Kind: errors.KindStale})
//
// Slot 0 is reserved, so the zero handle never resolves.
//
// # Observers
//
// Register observers to track slot lifecycle events:
//
//	users.Subscribe(observer)
//
// Values implementing Dropper have Drop called when they are removed.
//
// A Table is not safe for concurrent use.
package table
