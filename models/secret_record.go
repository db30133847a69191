package models

// SecretRecord is a single vault entry: three opaque string slots owned by
// one user. The three data fields are the atomic unit of encryption — they
// are always all plaintext or all ciphertext, never mixed.
type SecretRecord struct {
	// ID is the client-generated unique identifier of the record.
	// Assigned once when the record is created and never changed.
	ID string `json:"data_id"`

	// FieldA, FieldB and FieldC are the three data slots of the record
	// (e.g. title, login, secret). The engine encrypts and decrypts them
	// independently with the same key and IV.
	FieldA string `json:"data01"`
	FieldB string `json:"data02"`
	FieldC string `json:"data03"`

	// OwnerID correlates the record to the authenticated user it belongs to.
	// Never encrypted.
	OwnerID string `json:"user_id"`
}

// Clone returns a copy of the record. Encryption and decryption operate on
// clones so the caller's value is never mutated.
func (r SecretRecord) Clone() SecretRecord {
	return r
}
