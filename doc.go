// Package genarena implements a generational-index arena for Go.
//
// # Overview
//
// An arena stores values of a single type and returns a Handle for every
// inserted value. A handle is a small comparable value holding a slot index
// and the generation the slot had when the value was inserted. Owning code
// keeps handles instead of pointers; the arena checks every handle before
// using it, so a handle kept past the removal of its value is detected even
// after the slot has been reused by another value.
//
// This is particularly useful for:
//
//   - Entity lists and scene graphs that refer to each other by id
//   - Object tables handed to foreign code as integers
//   - Caches of heap values with explicit lifetimes
//
// # Basic Usage
//
//	a := genarena.New[Entity]()
//
//	h := a.Insert(Entity{Name: "player"})
//	if e, ok := a.Get(h); ok {
//		fmt.Println(e.Name)
//	}
//
//	// Modify in place
//	a.Ref(h).HP -= 10
//
//	a.Remove(h)
//	a.IsValid(h) // false, even once the slot is reused
//
//	for h, e := range a.All() {
//		fmt.Println(h, e.Name)
//	}
//
// # Validity
//
// A handle is valid iff its index is below Slots, the slot's generation
// equals the handle's generation and the slot holds a value. Invalid
// handles are never a fault: Get reports false, Ref returns nil and Remove
// reports false. Handles are not tied to the arena that issued them; a
// handle from another arena of the same type may validate against the
// wrong value, so never mix handles between arenas.
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	s := genarena.NewSafeArena[Entity]()
//	h := s.Insert(Entity{Name: "npc"})
//	s.Update(h, func(e *Entity) { e.HP++ })
//
// # Memory Layout
//
// Slots live in fixed-size chunks (DefaultChunkSize slots). When every slot
// is in use a new chunk is appended; existing chunks never move, so handles
// and pointers from Ref stay valid while the arena grows. Storage never
// shrinks.
//
// # Performance Characteristics
//
//   - Get, Ref, IsValid, Remove: O(1)
//   - Insert: O(slots) worst case with the default linear scan for a free
//     slot, O(log slots) with WithFreeList(true)
//   - Iteration: O(slots)
//
// # Metrics and Monitoring
//
// The arena provides counters for monitoring slot usage:
//
//	m := a.Metrics()
//	fmt.Printf("Live: %d of %d slots\n", m.Live, m.Slots)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
// Package arenaprom exports the same numbers as Prometheus metrics.
package genarena
