package game

// Result is where a round stands after a guess
type Result int

const (
	InProgress Result = iota
	Won
	Lost
)

var resultNames = []string{
	"in progress",
	"won",
	"lost",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return ""
	}
	return resultNames[r]
}

// Over reports whether the round has finished
func (r Result) Over() bool {
	return r != InProgress
}
