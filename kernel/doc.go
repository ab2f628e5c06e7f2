// Package kernel holds the firmware's synchronization and fault primitives:
// the non-blocking Mutex that guards the one shared hardware handle, and the
// fatal-error channel every invariant violation is reported through.
package kernel
