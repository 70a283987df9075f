package controllers

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	middleware "github.com/phillip/topup-intake-go/middleware"
	models "github.com/phillip/topup-intake-go/models"
	store "github.com/phillip/topup-intake-go/store"
	utils "github.com/phillip/topup-intake-go/utils"
)

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok(c, gin.H{"time": time.Now().UTC().Format(time.RFC3339)})
	}
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ---------------- LOGIN ----------------
func Login(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}
		if err := d.Validate.Struct(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(d.Config.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(d.Config.Admin.Password)) == 1
		if !userOK || !passOK {
			d.fail(c, http.StatusUnauthorized, utils.MsgInvalidCredentials, nil)
			return
		}

		token, expires, err := d.Sessions.Issue(input.Username)
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(middleware.SessionCookie, token, int(d.Sessions.TTL().Seconds()), "/", "", true, true)

		d.Logger.Info("admin logged in", zap.String("username", input.Username), zap.String("ip", c.ClientIP()))
		ok(c, gin.H{
			"message":   utils.MsgLoggedIn,
			"token":     token,
			"expiresAt": expires.Format(time.RFC3339),
		})
	}
}

// ---------------- LOGOUT ----------------
// Only the cookie is cleared; an issued token stays valid until it expires.
func Logout(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
		ok(c, gin.H{"message": utils.MsgLoggedOut})
	}
}

// ---------------- LIST ----------------
func ListOrders(d *Deps) gin.HandlerFunc {
	return listCollection[models.Order](d, store.Orders)
}

func ListInquiries(d *Deps) gin.HandlerFunc {
	return listCollection[models.Inquiry](d, store.Inquiries)
}

func ListSuggestions(d *Deps) gin.HandlerFunc {
	return listCollection[models.Suggestion](d, store.Suggestions)
}

func listCollection[T any](d *Deps, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := storeContext(c)
		defer cancel()

		items := []T{}
		if err := d.Store.ListNewestFirst(ctx, collection, &items); err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		ok(c, gin.H{"data": items})
	}
}

type statusInput struct {
	ID     text `json:"id" validate:"required"`
	Status text `json:"status" validate:"required"`
}

// ---------------- UPDATE ----------------
func UpdateOrderStatus(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input statusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		err := d.Store.SetFields(ctx, store.Orders, input.ID.String(), bson.M{"status": input.Status.String()})
		if errors.Is(err, store.ErrInvalidID) {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidID, err)
			return
		}
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		ok(c, gin.H{"message": utils.MsgStatusUpdated})
	}
}

// ---------------- DELETE ----------------
func DeleteOrder(d *Deps) gin.HandlerFunc {
	return deleteDocument(d, store.Orders)
}

func DeleteInquiry(d *Deps) gin.HandlerFunc {
	return deleteDocument(d, store.Inquiries)
}

func DeleteSuggestion(d *Deps) gin.HandlerFunc {
	return deleteDocument(d, store.Suggestions)
}

// deleteDocument takes the id from ?id= or a JSON body. Ids that match
// nothing still succeed.
func deleteDocument(d *Deps, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			var body struct {
				ID text `json:"id"`
			}
			if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
				d.fail(c, http.StatusBadRequest, utils.MsgInvalidForm, err)
				return
			}
			id = body.ID.String()
		}
		if id == "" {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, nil)
			return
		}

		ctx, cancel := storeContext(c)
		defer cancel()

		err := d.Store.Delete(ctx, collection, id)
		if errors.Is(err, store.ErrInvalidID) {
			d.fail(c, http.StatusBadRequest, utils.MsgInvalidID, err)
			return
		}
		if err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		d.Logger.Info("document deleted", zap.String("collection", collection), zap.String("id", id))
		ok(c, gin.H{"message": utils.MsgDeleted})
	}
}

type messageInput struct {
	Email   text `json:"email" validate:"required"`
	Subject text `json:"subject" validate:"required"`
	Message text `json:"message" validate:"required"`
}

// ---------------- SEND MESSAGE ----------------
func SendMessage(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input messageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}
		if err := d.validate(&input); err != nil {
			d.fail(c, http.StatusBadRequest, utils.MsgMissingFields, err)
			return
		}

		subject := input.Subject.String()
		body := utils.MessageEmail(subject, input.Message.String())
		if err := d.Mailer.Send(c.Request.Context(), input.Email.String(), subject, body); err != nil {
			d.fail(c, http.StatusInternalServerError, utils.MsgServerError, err)
			return
		}

		ok(c, gin.H{"message": utils.MsgMessageSent})
	}
}
