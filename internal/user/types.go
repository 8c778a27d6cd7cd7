package user

// User represents a row in the users table. Orders is an append-only list
// of order ids owned by the order service.
type User struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Orders []int64 `json:"orders"`
}
