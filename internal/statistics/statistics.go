package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single completed game
type GameResult struct {
	Score   int   // Cards successfully played across all stacks
	Seed    int64 // RNG seed for this game (for replay)
	Turns   int   // Actions taken before the game ended
	Perfect bool  // Every stack was completed
	Struck  bool  // Ended by burning the last fuse token
}

// Statistics tracks score statistics across a series of games
type Statistics struct {
	Games  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all scores for median/percentile calculation

	// Outcome analytics
	Perfect int // Games that completed every stack
	Struck  int // Games lost on fuse tokens

	// Score range
	MinScore int
	MaxScore int

	// Game length analytics
	TotalTurns int
	MaxTurns   int
}

// Mean returns the arithmetic mean score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	se := s.StdError()
	margin := 1.96 * se // 95% confidence
	return mean - margin, mean + margin
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	if s.Games == 0 || result.Score < s.MinScore {
		s.MinScore = result.Score
	}
	if result.Score > s.MaxScore {
		s.MaxScore = result.Score
	}

	score := float64(result.Score)
	s.Games++
	s.Sum += score
	s.Sum2 += score * score
	s.Values = append(s.Values, score)

	if result.Perfect {
		s.Perfect++
	}
	if result.Struck {
		s.Struck++
	}

	s.TotalTurns += result.Turns
	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
	}
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// MeanTurns returns the mean number of turns per game
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Games)
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.Perfect+s.Struck > s.Games {
		return fmt.Errorf("outcome counts (%d perfect, %d struck) exceed total games (%d)",
			s.Perfect, s.Struck, s.Games)
	}
	if s.MinScore > s.MaxScore {
		return fmt.Errorf("score range inverted: min=%d max=%d", s.MinScore, s.MaxScore)
	}
	return nil
}

// Summary is a point-in-time snapshot of the aggregates, suitable for reports
type Summary struct {
	Games     int     `json:"games"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	StdError  float64 `json:"std_error"`
	CI95Low   float64 `json:"ci95_low"`
	CI95High  float64 `json:"ci95_high"`
	Median    float64 `json:"median"`
	MinScore  int     `json:"min_score"`
	MaxScore  int     `json:"max_score"`
	Perfect   int     `json:"perfect"`
	Struck    int     `json:"struck"`
	MeanTurns float64 `json:"mean_turns"`
}

// Summary returns a snapshot of the current aggregates
func (s *Statistics) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	return Summary{
		Games:     s.Games,
		Mean:      s.Mean(),
		StdDev:    s.StdDev(),
		StdError:  s.StdError(),
		CI95Low:   low,
		CI95High:  high,
		Median:    s.Median(),
		MinScore:  s.MinScore,
		MaxScore:  s.MaxScore,
		Perfect:   s.Perfect,
		Struck:    s.Struck,
		MeanTurns: s.MeanTurns(),
	}
}
