package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a short text update with an optional media attachment. FileURL is
// the retrievable URL handed back by blob storage; empty when the post has no
// attachment (or the attachment was skipped for a disallowed extension).
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content    string             `bson:"content" json:"content"`
	AuthorID   primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	FileURL    string             `bson:"file_url,omitempty" json:"file_url,omitempty"`
}
