package models

// LoginRequest carries the login credentials to the auth endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration form to the auth endpoint.
// The server validates that both password fields match.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// CoreUserRequest identifies the acting user on vault-data endpoints.
type CoreUserRequest struct {
	UserID   string `json:"user_id"`
	SQLToken string `json:"sql_token"`
}

// IVRequest asks the server for the per-user IV bound to the given vault
// password. The client never generates an IV locally.
type IVRequest struct {
	Password string          `json:"password"`
	CoreUser CoreUserRequest `json:"core_user"`
}

// DeleteRecordRequest identifies one record for deletion.
type DeleteRecordRequest struct {
	ID       string          `json:"data_id"`
	CoreUser CoreUserRequest `json:"core_user"`
}

// RecordRequest wraps one SecretRecord together with the acting user for
// create and update calls.
type RecordRequest struct {
	ID       string          `json:"data_id"`
	FieldA   string          `json:"data01"`
	FieldB   string          `json:"data02"`
	FieldC   string          `json:"data03"`
	CoreUser CoreUserRequest `json:"core_user"`
}
