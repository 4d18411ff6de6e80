// internal/types/types.go
package types

// EntityID: уникальный идентификатор сущности в пределах одной сессии.
// Враги, башни и снаряды берут id из одного счётчика, поэтому id никогда не
// повторяются между коллекциями.
type EntityID uint64
