package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	models "github.com/phillip/topup-intake-go/models"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

type suggestionInput struct {
	Name    text `form:"name" json:"name" validate:"required"`
	Contact text `form:"contact" json:"contact" validate:"required"`
	Message text `form:"message" json:"message" validate:"required"`
}

// ---------------- CREATE ----------------
func CreateSuggestion(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input suggestionInput
		if err := c.ShouldBind(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidForm, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		suggestion := models.Suggestion{
			Name:      input.Name.String(),
			Contact:   input.Contact.String(),
			Message:   input.Message.String(),
			CreatedAt: time.Now().UTC(),
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		id, err := d.Store.Insert(ctx, store.Suggestions, suggestion)
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}
		d.Logger.Info("suggestion created", zap.String("id", id))

		subject, body := utils.SuggestionEmail(suggestion)
		d.notifyOperators(c, utils.SuggestionChatText(suggestion), subject, body)

		ok(c, gin.H{"id": id, "message": utils.MsgSuggestionReceived})
	}
}
