package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderTypeUC     = "UC"
	OrderTypeBundle = "Bundle"

	OrderStatusUnpaid = "unpaid"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	PlayerID      string             `bson:"player_id" json:"playerId"`
	Email         string             `bson:"email" json:"email"`
	Type          string             `bson:"type" json:"type"` // UC, Bundle
	UCAmount      *string            `bson:"uc_amount" json:"ucAmount"`
	Bundle        *string            `bson:"bundle" json:"bundle"`
	TotalAmount   string             `bson:"total_amount" json:"totalAmount"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	ScreenshotURL *string            `bson:"screenshot_url" json:"screenshotUrl"`
	Status        string             `bson:"status" json:"status"` // free text, starts as unpaid
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// OrderType is UC whenever a UC amount was supplied.
func OrderType(ucAmount *string) string {
	if ucAmount != nil && *ucAmount != "" {
		return OrderTypeUC
	}
	return OrderTypeBundle
}
