package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment is embedded in an Idea, append-only. Author fields are snapshots
// taken at creation time, never re-resolved from the users collection.
type Comment struct {
	AuthorID   primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName string             `bson:"author_name" json:"author_name"`
	Text       string             `bson:"text" json:"text"`
}

// Idea is a user-submitted proposal tagged with a free-text domain.
// Upvotes only increase and the comment sequence only grows; both are
// mutated through atomic store updates, never read-modify-write.
type Idea struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Domain      string             `bson:"domain" json:"domain"`
	AuthorID    primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	AuthorEmail string             `bson:"author_email" json:"author_email"`
	Upvotes     int                `bson:"upvotes" json:"upvotes"`
	Comments    []Comment          `bson:"comments" json:"comments"`
}
