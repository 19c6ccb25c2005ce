package models

import "time"

type Encouragement struct {
	ID        string    `bson:"_id,omitempty"`
	UserID    string    `bson:"userId"`
	Name      string    `bson:"name"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}
