package models

// Credential matches a document in the users collection. Records are
// maintained externally; the server only reads and compares them.
type Credential struct {
	Username string `bson:"username"`
	Password string `bson:"password"`
	Role     string `bson:"role"`
	Name     string `bson:"name"`
}
