package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fail writes {success:false, message}. The cause is attached to the
// context for RequestLogger, with missing fields as meta.
func (d *Deps) fail(c *gin.Context, code int, message string, err error) {
	if err == nil {
		err = errors.New(message)
	} else {
		err = fmt.Errorf("%s: %w", message, err)
	}
	ginErr := c.Error(err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		ginErr.SetMeta(gin.H{"fields": missing})
	}

	c.JSON(code, gin.H{"success": false, "message": message})
}

func ok(c *gin.Context, body gin.H) {
	body["success"] = true
	c.JSON(http.StatusOK, body)
}
