package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Clients() ClientRepository
	Services() ServiceRepository
	Orders() OrderRepository
	Racks() RackRepository
	Stats() StatsRepository
}
