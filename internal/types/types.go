// internal/types/types.go
package types

// EntityID identifies one entity in the component store. 0 is never a
// valid entity, so a zero TargetID reads as "no target".
type EntityID uint64
