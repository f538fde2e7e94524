package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type allocationInput struct {
	ItemID string `json:"item_id" binding:"required,uuid"`
}

type receiptInput struct {
	Period      string            `json:"period" binding:"required,datetime=2006-01"`
	Reference   string            `json:"reference" binding:"max=3"`
	Kind        string            `form:"kind" binding:"omitempty,oneof=CASH BANK"`
	Allocations []allocationInput `json:"allocations" binding:"dive"`
}

func TestValidationDetails(t *testing.T) {
	SetupValidator()

	in := receiptInput{
		Period:      "2025/03",
		Reference:   "toolong",
		Kind:        "WIRE",
		Allocations: []allocationInput{{ItemID: "x"}},
	}
	err := binding.Validator.ValidateStruct(&in)
	require.Error(t, err)

	got := map[string]string{}
	for _, d := range ValidationDetails(err) {
		got[d.Field] = d.Message
	}
	assert.Equal(t, "Must match the layout 2006-01", got["period"])
	assert.Equal(t, "Must be at most 3 characters", got["reference"])
	assert.Equal(t, "Must be one of: CASH BANK", got["kind"])
	assert.Equal(t, "Invalid UUID format", got["allocations[0].item_id"])
}

func TestValidationDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, ValidationDetails(errors.New("unexpected EOF")))
}
