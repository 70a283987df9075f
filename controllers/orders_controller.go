package controllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	models "github.com/phillip/topup-intake-go/models"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

type orderInput struct {
	Name          text `form:"name" json:"name" validate:"required"`
	PlayerID      text `form:"playerId" json:"playerId" validate:"required"`
	Email         text `form:"email" json:"email" validate:"required"`
	UCAmount      text `form:"ucAmount" json:"ucAmount" validate:"required_without=Bundle"`
	Bundle        text `form:"bundle" json:"bundle" validate:"required_without=UCAmount"`
	TotalAmount   text `form:"totalAmount" json:"totalAmount" validate:"required"`
	TransactionID text `form:"transactionId" json:"transactionId" validate:"required"`
}

// ---------------- CREATE ----------------
func CreateOrder(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Bind form fields ---
		var input orderInput
		if err := c.ShouldBind(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidForm, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		// --- Read optional screenshot ---
		shot, status, msg, err := readScreenshot(c)
		if err != nil {
			d.fail(c, status, msg, err)
			return
		}

		var screenshotURL *string
		if shot != nil {
			url, err := d.Blobs.Upload(c.Request.Context(), *shot)
			if err != nil {
				d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
				return
			}
			screenshotURL = &url
		}

		// --- Save order ---
		uc := optionalText(input.UCAmount)
		order := models.Order{
			Name:          input.Name.String(),
			PlayerID:      input.PlayerID.String(),
			Email:         input.Email.String(),
			Type:          models.OrderType(uc),
			UCAmount:      uc,
			Bundle:        optionalText(input.Bundle),
			TotalAmount:   input.TotalAmount.String(),
			TransactionID: input.TransactionID.String(),
			ScreenshotURL: screenshotURL,
			Status:        models.OrderStatusUnpaid,
			CreatedAt:     time.Now().UTC(),
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		id, err := d.Store.Insert(ctx, store.Orders, order)
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}
		d.Logger.Info("order created", zap.String("id", id), zap.String("type", order.Type))

		subject, body := utils.OrderEmail(order)
		d.notifyOperators(c, utils.OrderChatText(order), subject, body)

		ok(c, gin.H{"id": id, "message": utils.MsgOrderReceived})
	}
}

// readScreenshot returns nil when the request carries no screenshot part.
func readScreenshot(c *gin.Context) (*utils.Screenshot, int, string, error) {
	fileHeader, err := c.FormFile("screenshot")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, 0, "", nil
	}
	if err != nil {
		return nil, http.StatusBadRequest, utils.MsgInvalidForm, err
	}
	if fileHeader.Size > utils.MaxScreenshotBytes {
		return nil, http.StatusBadRequest, utils.MsgScreenshotTooLarge, errors.New("screenshot exceeds size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, http.StatusInternalServerError, utils.MsgServerError, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, utils.MaxScreenshotBytes+1))
	if err != nil {
		return nil, http.StatusInternalServerError, utils.MsgServerError, err
	}
	if len(data) > utils.MaxScreenshotBytes {
		return nil, http.StatusBadRequest, utils.MsgScreenshotTooLarge, errors.New("screenshot exceeds size limit")
	}

	return &utils.Screenshot{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, 0, "", nil
}

func optionalText(t text) *string {
	s := t.String()
	if s == "" {
		return nil
	}
	return &s
}
