package queue

import (
	"encoding/json"

	"github.com/banarasikart/bsk-api/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderStatusNotify records an order status transition off the request path.
const TaskOrderStatusNotify = constants.TaskOrderStatusNotify

// OrderStatusNotifyPayload carries the transition to the worker.
type OrderStatusNotifyPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

// NewOrderStatusNotifyTask builds the status notification task.
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}
