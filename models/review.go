package models

// Review is a user-authored movie review stored in the document store.
// Only the owning user may update or delete it. IsEdited is set on the first
// update and never reset.
type Review struct {
	ID        string `json:"id" bson:"_id"`
	UserID    string `json:"userId" bson:"userId"`
	UserEmail string `json:"userEmail" bson:"userEmail"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	Content   string `json:"content" bson:"content"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
	IsEdited  bool   `json:"isEdited" bson:"isEdited"`
}
