package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type User struct {
	ID                  string     `bson:"_id,omitempty"`
	Email               string     `bson:"email"`
	DisplayName         string     `bson:"displayName"`
	Password            string     `bson:"password"`
	AvatarObjectName    string     `bson:"avatarObjectName,omitempty"`
	ShareToken          string     `bson:"shareToken,omitempty"`
	ShareTokenCreatedAt *time.Time `bson:"shareTokenCreatedAt,omitempty"`
	TimeModel           `bson:",inline"`
}

func (u *User) HasShareLink() bool {
	return u.ShareToken != ""
}

// ConvertToBsonM returns the mutable profile fields for a $set update.
func (u *User) ConvertToBsonM() bson.M {
	result := bson.M{
		"displayName": u.DisplayName,
		"updatedAt":   u.UpdatedAt,
	}
	if u.AvatarObjectName != "" {
		result["avatarObjectName"] = u.AvatarObjectName
	}
	return result
}
