package queue

// Subjects published by the reading and anomaly services. Notification
// workers subscribe to these; nothing on the synchronous request path
// depends on a subscriber being present.
const (
	SubjectReadingRecorded = "reading.recorded"
	SubjectAlertRaised     = "alert.raised"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
