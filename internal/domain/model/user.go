package model

// User is an employee identity. Name is the authoritative display value;
// NameCiphertext is an encrypted copy written alongside every create or
// rename and never decrypted on the display path.
type User struct {
	ID             int64
	Name           string
	NameCiphertext string
}
