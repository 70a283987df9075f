package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InquiryStatusPending = "pending"
	InquiryStatusReplied = "replied"
)

type Inquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"` // pending, replied
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
