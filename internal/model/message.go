// Package model defines the core data types shared across the application.
package model

import "time"

// IncomingMessage is one inbound chat message as delivered by the transport,
// before scoring.
type IncomingMessage struct {
	Timestamp time.Time
	Username  string
	Text      string
	ChatID    int64
	UserID    int64
	MessageID int
}

// MessageRecord is one scored chat message as persisted to the per-day store.
// Immutable once produced.
type MessageRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	Username       string    `json:"username,omitempty"`
	Text           string    `json:"text"`
	SentimentLabel Label     `json:"sentiment_label"`
	ChatID         int64     `json:"chat_id"`
	UserID         int64     `json:"user_id,omitempty"`
	SentimentScore float64   `json:"sentiment_score"`
	MessageID      int       `json:"message_id"`
	IsOutlier      bool      `json:"is_outlier"`
}

// Day returns the calendar day the record belongs to, formatted YYYY-MM-DD.
func (r MessageRecord) Day() string {
	return r.Timestamp.Format("2006-01-02")
}

// Month returns the calendar month the record belongs to, formatted YYYY-MM.
func (r MessageRecord) Month() string {
	return r.Timestamp.Format("2006-01")
}
