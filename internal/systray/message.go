package systray

type Message int

const (
	SystrayShowWindow Message = iota
	SystrayRefreshConfig
	SystrayQuit
)

func (m Message) String() string {
	switch m {
	case SystrayShowWindow:
		return "show window"
	case SystrayRefreshConfig:
		return "refresh config"
	case SystrayQuit:
		return "quit"
	}
	return "unknown"
}
