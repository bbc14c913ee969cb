package goregistration

import "golang.org/x/crypto/bcrypt"

// hashPassword produces a salted one-way hash of the password. Hashing
// the same password twice yields different outputs.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func checkPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
