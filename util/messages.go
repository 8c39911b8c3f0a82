package util

const (
	INVALID_REQUEST_BODY = "Invalid request body"
	NOT_FOUND            = "Not found"
	SERVER_ERROR         = "Server error, please try again later"

	SIGNUP_FIELDS_REQUIRED = "Username, email and password are required"
	PASSWORD_TOO_LONG      = "Password must be at most 72 bytes"
	LOGIN_FIELDS_REQUIRED  = "Email and password are required"
	EMAIL_ALREADY_IN_USE   = "Email already in use"
	USERNAME_ALREADY_TAKEN = "Username already taken"
	FIELD_ALREADY_EXISTS   = "%s already exists"
	USER_REGISTERED        = "User registered successfully"
	INVALID_CREDENTIALS    = "Invalid email or password"
	LOGIN_SUCCESSFUL       = "Login successful"
	ADMIN_LOGIN_SUCCESSFUL = "Admin login successful"
	ERROR_FETCHING_USERS   = "Error fetching users"

	APPOINTMENT_FIELDS_REQUIRED = "Patient name and date are required"
	ERROR_CREATING_APPOINTMENT  = "Error creating appointment"
	ERROR_FETCHING_APPOINTMENTS = "Error fetching appointments"

	RECORD_FIELDS_REQUIRED = "Patient name and condition are required"
	ERROR_CREATING_RECORD  = "Error creating record"

	BILLING_FIELDS_REQUIRED = "Patient name, amount and payment method are required"
	ERROR_CREATING_BILLING  = "Error creating billing entry"

	TOO_MANY_REQUESTS = "Too many requests, please slow down"
)

const (
	ADMIN_REDIRECT      = "/admin"
	APPOINTMENT_DEFAULT = "Scheduled"
)
