package requestid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_ReturnsStoredID(t *testing.T) {
	ctx := With(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", From(ctx))
}

func TestFrom_MintsWhenAbsent(t *testing.T) {
	first := From(context.Background())
	second := From(context.Background())
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
