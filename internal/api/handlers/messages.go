package handlers

// User-facing response messages.
const (
	MsgAccountAlreadyExists = "Account already exists."
	MsgInvalidCredentials   = "These credentials do not match our records."
	MsgOnlyForAdmins        = "Only for admins"
	MsgUserNotExists        = "The user does not exist"
	MsgUserUpdated          = "The user has been updated"
	MsgUserDeleted          = "User has been deleted"
	MsgInvalidIDFormat      = "Invalid id format"
	MsgUnauthorized         = "Unauthorized"
	MsgInternalServerError  = "Internal Server Error"
	MsgInvalidRequestBody   = "Invalid request body"
)
