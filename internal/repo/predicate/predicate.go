// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClientPrice is the predicate function for clientprice builders.
type ClientPrice func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// Exam is the predicate function for exam builders.
type Exam func(*sql.Selector)

// ExamEvent is the predicate function for examevent builders.
type ExamEvent func(*sql.Selector)

// ExamType is the predicate function for examtype builders.
type ExamType func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// MeetingParticipant is the predicate function for meetingparticipant builders.
type MeetingParticipant func(*sql.Selector)

// RadiologistPrice is the predicate function for radiologistprice builders.
type RadiologistPrice func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Vacation is the predicate function for vacation builders.
type Vacation func(*sql.Selector)
