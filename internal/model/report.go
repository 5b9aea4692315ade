package model

import "time"

// SentimentDistribution counts a day's records per label band.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// DailyReport summarizes one calendar day of scored messages. Reports are
// appended to the report store once per generation, including same-day
// reruns.
type DailyReport struct {
	Date             string                `json:"date"`
	GeneratedAt      time.Time             `json:"generated_at"`
	Distribution     SentimentDistribution `json:"sentiment_distribution"`
	TotalMessages    int                   `json:"total_messages"`
	AverageSentiment float64               `json:"average_sentiment"`
	OutliersCount    int                   `json:"outliers_count"`
	TopPositive      float64               `json:"top_positive"`
	TopNegative      float64               `json:"top_negative"`
}
