// Package queue publishes and consumes booking lifecycle events over
// RabbitMQ. The events are an audit/integration stream for downstream
// consumers; the booking API itself never depends on them, and every
// failure here is logged and swallowed so a broken broker cannot block
// a booking.
package queue

// BookingCreatedEvent is published after a booking is successfully
// inserted. It carries enough detail for consumers to log or feed
// analytics without querying the database.
type BookingCreatedEvent struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	RoomName  string `json:"room_name,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}
