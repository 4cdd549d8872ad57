package component

// Phase — режим игры, выбирающий покадровую функцию
type Phase int

const (
	Playing Phase = iota
	Ended
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}
