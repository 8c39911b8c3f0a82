package repository

const (
	UsersCollection        = "users"
	AppointmentsCollection = "appointments"
	RecordsCollection      = "records"
	BillingsCollection     = "billings"
)
