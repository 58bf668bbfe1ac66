package entity

// Depot representa un depósito físico donde se almacena stock.
type Depot struct {
	ID      int64
	Name    string
	Address string
	Active  bool
}
