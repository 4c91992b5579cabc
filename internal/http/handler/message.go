package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	loginSuccessMsg   = "Login successful!"
	invalidLoginMsg   = "Invalid username or password"
	logoutMsg         = "Logged out successfully."
	studentAddedMsg   = "Student added successfully!"
	studentUpdatedMsg = "Student updated successfully!"
	studentDeletedMsg = "Student deleted successfully!"
	fieldsRequiredMsg = "Both fields are required!"
	usernameLengthMsg = "Username must be at most 80 characters."
	passwordLengthMsg = "Password must be at most 72 bytes."
	userExistsMsg     = "User already exists!"
	userCreatedMsg    = "User created successfully!"
	notFoundMsg       = "The requested student does not exist."
	badRequestMsg     = "The submitted form is incomplete or invalid."
)
