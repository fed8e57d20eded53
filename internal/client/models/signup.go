package models

// SignupForm collects everything needed to register a new account.
// Photo holds the raw image bytes; PhotoName is the original file name
// used for the multipart file part. The form is validated as a whole
// before submission and field values survive a failed submission attempt.
type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	CompanyName     string
	DateOfBirth     string
	Photo           []byte
	PhotoName       string
}
