package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the account record. PasswordHash is a bcrypt hash and is never
// rendered or serialized to JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
}
