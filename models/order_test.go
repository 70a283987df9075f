package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderType(t *testing.T) {
	uc := "660"
	empty := ""

	assert.Equal(t, OrderTypeUC, OrderType(&uc))
	assert.Equal(t, OrderTypeBundle, OrderType(nil))
	assert.Equal(t, OrderTypeBundle, OrderType(&empty))
}
