package helpers

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryAttempts(t *testing.T) {
	assert.Zero(t, DeliveryAttempts(nil))
	assert.Zero(t, DeliveryAttempts(amqp.Table{AttemptsHeader: "3"}))
	assert.Equal(t, 3, DeliveryAttempts(amqp.Table{AttemptsHeader: int32(3)}))
	assert.Equal(t, 4, DeliveryAttempts(amqp.Table{AttemptsHeader: int64(4)}))
	assert.Equal(t, "recruitment.events.dead", DeadLetterQueue("recruitment.events"))
}
