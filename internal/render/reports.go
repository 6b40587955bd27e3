package render

import (
	"github.com/phrazzld/datakit/internal/domain"
	"github.com/phrazzld/datakit/internal/stats"
	"github.com/phrazzld/datakit/internal/text"
)

// FrequencyReport is the rendered form of a word frequency table.
type FrequencyReport struct {
	Total  int              `json:"total"`
	Unique int              `json:"unique"`
	Words  []text.WordCount `json:"words"`
}

// NewFrequencyReport ranks freq and keeps the top n words.
func NewFrequencyReport(freq text.Frequency, n int) FrequencyReport {
	return FrequencyReport{
		Total:  freq.Total(),
		Unique: len(freq),
		Words:  freq.Top(n),
	}
}

// EmailReport is the result of checking one address.
type EmailReport struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}

// UserReport is a user record together with its textual encoding.
type UserReport struct {
	User    domain.User   `json:"user"`
	Format  domain.Format `json:"format"`
	Encoded string        `json:"encoded"`
}

// StatsReport pairs the input numbers with their summary.
type StatsReport struct {
	Numbers []float64     `json:"numbers"`
	Summary stats.Summary `json:"summary"`
}

// DemoReport gathers one example of every feature.
type DemoReport struct {
	Strings   []text.Analysis `json:"strings"`
	Stats     StatsReport     `json:"stats"`
	Text      string          `json:"text"`
	Frequency FrequencyReport `json:"frequency"`
	Emails    []EmailReport   `json:"emails"`
	User      UserReport      `json:"user"`
}
