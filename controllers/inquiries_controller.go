package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	models "github.com/phillip/topup-intake-go/models"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

type inquiryInput struct {
	Email   text `form:"email" json:"email" validate:"required"`
	Message text `form:"message" json:"message" validate:"required"`
}

// ---------------- CREATE ----------------
func CreateInquiry(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input inquiryInput
		if err := c.ShouldBind(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidForm, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		inquiry := models.Inquiry{
			Email:     input.Email.String(),
			Message:   input.Message.String(),
			Status:    models.InquiryStatusPending,
			CreatedAt: time.Now().UTC(),
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		id, err := d.Store.Insert(ctx, store.Inquiries, inquiry)
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}
		d.Logger.Info("inquiry created", zap.String("id", id))

		subject, body := utils.InquiryEmail(inquiry)
		d.notifyOperators(c, utils.InquiryChatText(inquiry), subject, body)

		ok(c, gin.H{"id": id, "message": utils.MsgInquiryReceived})
	}
}

type replyInput struct {
	InquiryID text `json:"inquiryId" validate:"required"`
	Email     text `json:"email" validate:"required"`
	Message   text `json:"message" validate:"required"`
	Reply     text `json:"reply" validate:"required"`
}

// ---------------- REPLY ----------------
// The inquiry only moves to "replied" after the email has been accepted.
func ReplyInquiry(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input replyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}
		if !store.ValidID(input.InquiryID.String()) {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidID, store.ErrInvalidID)
			return
		}

		subject, body := utils.ReplyEmail(input.Message.String(), input.Reply.String())
		if err := d.Mailer.Send(c.Request.Context(), input.Email.String(), subject, body); err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		err := d.Store.SetFields(ctx, store.Inquiries, input.InquiryID.String(), bson.M{"status": models.InquiryStatusReplied})
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		ok(c, gin.H{"message": utils.MsgReplySent})
	}
}
