package models

type Entry struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	EntryDate string `bson:"entryDate"`
	Category  string `bson:"category"`
	Content   string `bson:"content"`
	TimeModel `bson:",inline"`
}
