package game

// Band awards Rank and Winnings (minor units) to scores above Above.
type Band struct {
	Above    int
	Rank     string
	Winnings int64
}

type Result struct {
	Rank     string
	Winnings int64
}

// Bands must be ordered by descending Above.
type Bands []Band

var DefaultBands = Bands{
	{Above: 1500, Rank: "1", Winnings: 50000},
	{Above: 1000, Rank: "3", Winnings: 25000},
	{Above: 500, Rank: "10", Winnings: 5000},
}

func (b Bands) Results(score int) Result {
	if score <= 0 {
		return Result{Rank: "-"}
	}
	for _, band := range b {
		if score > band.Above {
			return Result{Rank: band.Rank, Winnings: band.Winnings}
		}
	}
	return Result{Rank: "50+"}
}

// Results ranks a final score against DefaultBands.
func Results(score int) Result {
	return DefaultBands.Results(score)
}
