// Package events holds the NATS subject names shared between publishers
// and the worker subscribers.
package events

const (
	// Exam lifecycle. Each subject carries the exam id as a suffix token
	// and as the message payload.
	SubjectExamCreated   = "raydent.exam.created"
	SubjectExamClaimed   = "raydent.exam.claimed"
	SubjectExamFinalized = "raydent.exam.finalized"
)
