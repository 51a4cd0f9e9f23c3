package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher provides one-way password hashing and verification on top
// of bcrypt. Hashing the same plaintext twice yields different digests
// (bcrypt salts internally) and both verify.
type PasswordHasher struct {
	cost int

	// dummyDigest is compared against when no stored digest exists, so a
	// login with an unknown email costs the same as one with a wrong
	// password.
	dummyDigest []byte
}

func NewPasswordHasher() *PasswordHasher {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("axicom.dummy.credential"), bcrypt.DefaultCost)
	return &PasswordHasher{cost: bcrypt.DefaultCost, dummyDigest: dummy}
}

// Hash returns a salted one-way digest of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext produced digest. Malformed digests
// verify as false rather than erroring.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// VerifyDummy burns one bcrypt comparison against a throwaway digest.
func (h *PasswordHasher) VerifyDummy(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyDigest, []byte(plaintext))
}
