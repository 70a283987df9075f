package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	models "github.com/phillip/topup-intake-go/models"
)

func TestHTMLText(t *testing.T) {
	assert.Equal(t, "line one<br>line two<br>three", HTMLText("line one\nline two\r\nthree"))
	assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;", HTMLText("<script>x</script>"))
}

func TestOrderEmail(t *testing.T) {
	uc := "660"
	shot := "https://storage.googleapis.com/proofs/orders/1-a.png"
	subject, body := OrderEmail(models.Order{
		Name:          "Sam",
		PlayerID:      "5123",
		Email:         "sam@example.com",
		Type:          models.OrderTypeUC,
		UCAmount:      &uc,
		TotalAmount:   "9.99",
		TransactionID: "TX1",
		ScreenshotURL: &shot,
	})

	assert.Equal(t, "New UC order from Sam", subject)
	assert.Contains(t, body, "<b>UC Amount:</b> 660<br>")
	assert.Contains(t, body, "<b>Bundle:</b> -<br>")
	assert.Contains(t, body, shot)
}

func TestOrderChatText(t *testing.T) {
	bundle := "Prime"
	text := OrderChatText(models.Order{Name: "Sam", Type: models.OrderTypeBundle, Bundle: &bundle})

	assert.Contains(t, text, "Type: Bundle")
	assert.Contains(t, text, "Bundle: Prime")
	assert.Contains(t, text, "UC Amount: -")
	assert.NotContains(t, text, "Screenshot")
}

func TestReplyEmail(t *testing.T) {
	subject, body := ReplyEmail("where is\nmy order?", "It shipped <today>")

	assert.Equal(t, "Re: your inquiry", subject)
	assert.Contains(t, body, "It shipped &lt;today&gt;")
	assert.Contains(t, body, "where is<br>my order?")
}

func TestMessageEmail(t *testing.T) {
	body := MessageEmail("Order update", "Hi\nYour order is done")
	assert.Contains(t, body, "Order update")
	assert.Contains(t, body, "Hi<br>Your order is done")
}
