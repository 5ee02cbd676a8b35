package game

// Kind is the closed set of actor behavior categories.
type Kind int

const (
	KindActor Kind = iota // Plain actor with no behavior of its own
	KindPlayer
	KindCoin
	KindFireball
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// Obstacle is the terrain label of a grid cell.
type Obstacle int

const (
	ObstacleNone Obstacle = iota
	ObstacleWall
	ObstacleLava
)

func (o Obstacle) String() string {
	switch o {
	case ObstacleWall:
		return "wall"
	case ObstacleLava:
		return "lava"
	default:
		return ""
	}
}

// Status is the outcome of a level. It only ever moves from StatusNone to
// one of the terminal values.
type Status int

const (
	StatusNone Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return ""
	}
}

// IsTerminal reports whether the status ends the level.
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// Touch identifies what the player came into contact with. It merges terrain
// labels and actor kinds so a single Level.PlayerTouched call covers both.
type Touch int

const (
	TouchNone Touch = iota
	TouchWall
	TouchLava
	TouchActor
	TouchPlayer
	TouchCoin
	TouchFireball
)

func (t Touch) String() string {
	switch t {
	case TouchWall:
		return "wall"
	case TouchLava:
		return "lava"
	case TouchActor:
		return "actor"
	case TouchPlayer:
		return "player"
	case TouchCoin:
		return "coin"
	case TouchFireball:
		return "fireball"
	default:
		return ""
	}
}

// IsLethal reports whether touching t loses the level.
func (t Touch) IsLethal() bool {
	return t == TouchLava || t == TouchFireball
}

// TouchOf maps an actor kind to the touch it produces.
func TouchOf(k Kind) Touch {
	switch k {
	case KindActor:
		return TouchActor
	case KindPlayer:
		return TouchPlayer
	case KindCoin:
		return TouchCoin
	case KindFireball:
		return TouchFireball
	default:
		return TouchNone
	}
}

// TouchOfObstacle maps a terrain label to the touch it produces.
func TouchOfObstacle(o Obstacle) Touch {
	switch o {
	case ObstacleWall:
		return TouchWall
	case ObstacleLava:
		return TouchLava
	default:
		return TouchNone
	}
}
