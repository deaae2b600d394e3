// component/pose.go
package component

import "go-boy-fsm/internal/config"

// Полосы спрайт-листа (строки, считая снизу).
const (
	BandRunLeft   = 0
	BandRunRight  = 1
	BandIdleLeft  = 2
	BandIdleRight = 3
)

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Pose holds everything about the character that changes from frame to frame.
// States are stateless behaviors; all of their mutable data lives here.
type Pose struct {
	Position
	Dir       int // -1, 0 или +1
	Action    int // строка спрайт-листа
	Frame     int // столбец спрайт-листа, всегда в [0, FramesPerBand)
	StartTime float64
}

// NewPose returns the default pose: centered and standing idle.
func NewPose() Pose {
	return Pose{
		Position: Position{X: config.StartX, Y: config.StartY},
		Action:   config.StartAction,
	}
}

// AdvanceFrame moves to the next animation column, wrapping at the band end.
func (p *Pose) AdvanceFrame() {
	p.Frame = (p.Frame + 1) % config.FramesPerBand
}

// Face sets direction and the matching running band.
func (p *Pose) Face(dir int) {
	p.Dir = dir
	switch dir {
	case 1:
		p.Action = BandRunRight
	case -1:
		p.Action = BandRunLeft
	}
}
