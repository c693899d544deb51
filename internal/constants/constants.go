package constants

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// IsValidOrderStatus reports whether status belongs to the fixed enum.
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SKUPrefix prefixes server-generated product SKUs.
const SKUPrefix = "BSK"

// Queue names.
const (
	QueueDefault = "default"
)

// Task type names.
const (
	TaskOrderStatusNotify = "order:status_notify"
)
