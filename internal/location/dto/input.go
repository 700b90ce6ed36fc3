package dto

type CreateLocationInput struct {
	Name     string
	Type     string // warehouse or store
	Address  string
	Capacity *int64
	Manager  string
	Contact  string
}
