package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreeabea/FoodDeliveryAppServer/logging"
	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

type recordingSink struct {
	messages []models.Message
	fail     bool
}

func (s *recordingSink) Push(message models.Message) error {
	if s.fail {
		return errors.New("broken pipe")
	}
	s.messages = append(s.messages, message)
	return nil
}

func orderFor(courierID, orderID int) models.OrderDTO {
	return models.OrderDTO{
		ID:       orderID,
		Courier:  models.UserDTO{ID: courierID, Username: "courier"},
		Datetime: "21.03.2021 05:30:00",
		Status:   models.OrderCreated,
	}
}

func TestPublishReachesOnlyAssignedCourier(t *testing.T) {
	hub := NewHub(logging.GetSugaredLogger())
	assigned := &recordingSink{}
	other := &recordingSink{}
	hub.Subscribe(1, assigned)
	hub.Subscribe(2, other)

	hub.Publish(orderFor(1, 7))

	assert.Len(t, assigned.messages, 1)
	assert.Empty(t, other.messages)

	message := assigned.messages[0]
	assert.Equal(t, "courierNotification", message.Header)
	assert.Equal(t, []string{"Order with id 7 was added at 21.03.2021 05:30:00"}, message.ObjectsJSON)
}

func TestPublishWithoutSubscriberStillRecords(t *testing.T) {
	hub := NewHub(logging.GetSugaredLogger())

	hub.Publish(orderFor(5, 1))

	assert.Len(t, hub.Published(), 1)
}

func TestSubscribeReplacesPreviousSink(t *testing.T) {
	hub := NewHub(logging.GetSugaredLogger())
	old := &recordingSink{}
	current := &recordingSink{}
	hub.Subscribe(1, old)
	hub.Subscribe(1, current)

	hub.Publish(orderFor(1, 3))

	assert.Empty(t, old.messages)
	assert.Len(t, current.messages, 1)
}

func TestUnsubscribeKeepsNewerSink(t *testing.T) {
	hub := NewHub(logging.GetSugaredLogger())
	old := &recordingSink{}
	current := &recordingSink{}
	hub.Subscribe(1, old)
	hub.Subscribe(1, current)

	// The old session tearing down must not drop the newer login.
	hub.Unsubscribe(1, old)
	hub.Publish(orderFor(1, 4))

	assert.Len(t, current.messages, 1)
}

func TestPushFailureDoesNotPropagate(t *testing.T) {
	hub := NewHub(logging.GetSugaredLogger())
	hub.Subscribe(1, &recordingSink{fail: true})

	hub.Publish(orderFor(1, 9))

	assert.Len(t, hub.Published(), 1)
}
