package repositories

// RepositoryProvider bundles the concrete repositories an adapter exposes so
// service construction can take a single dependency.
type RepositoryProvider struct {
	UserRepo        UserRepository
	HospitalRepo    HospitalRepository
	AppointmentRepo AppointmentRepository
}
