package model

// User represents an account record as stored in the `users` table.
// The password is kept as a bcrypt hash; the plaintext secret only
// exists for the lifetime of a LOGIN, REGISTER or CHANGE_PASSWORD
// request.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
type User struct {
	ID           int    // users.id
	Username     string // users.username
	PasswordHash string // users.password_hash
}

// Profile holds the optional personal details of a user, mirroring
// the `users_info` table. A profile may be absent until the first
// UPDATE_USER command for that user; absent string fields render as
// "?" and an absent age as -1 in the GET_USER response.
//
// Fields:
//  UserID    – owner of the profile (users_info.user_id).
//  FirstName – given name, empty when never set.
//  LastName  – family name, empty when never set.
//  Age       – age in years, negative when never set.
type Profile struct {
	UserID    int    // users_info.user_id
	FirstName string // users_info.first_name
	LastName  string // users_info.last_name
	Age       int    // users_info.age
}
