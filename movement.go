package roadnet

import (
	"math"
)

// Movement is a way to pass a junction segment: enter through one end-point, leave through another
type Movement struct {
	// End-point indices of the junction segment
	From int
	To   int

	Bound BoundType
	Type  MovementType
}

// CompositeType joins approach bound and movement type, e.g. "EBL" for eastbound left turn
func (mvmt Movement) CompositeType() MovementCompositeType {
	if mvmt.Type == MOVEMENT_UNDEFINED {
		return MOVEMENT_NONE
	}
	return MovementCompositeType(uint16(mvmt.Bound-1)*4 + uint16(mvmt.Type))
}

// Movements returns every movement through a curve or a crossing, ordered by (From, To).
// Other kinds of segments have no movements.
func (seg *Segment) Movements() []Movement {
	if seg.Kind != SEGMENT_CURVE && seg.Kind != SEGMENT_CROSSING {
		return nil
	}
	movements := make([]Movement, 0, len(seg.EndPoints)*(len(seg.EndPoints)-1))
	for from := range seg.EndPoints {
		// End-point directions point away from the junction, so an entering vehicle heads against it
		heading := seg.EndPoints[from].Direction.Neg()
		for to := range seg.EndPoints {
			if from == to {
				continue
			}
			movements = append(movements, Movement{
				From:  from,
				To:    to,
				Bound: boundOf(heading),
				Type:  turnBetween(heading, seg.EndPoints[to].Direction),
			})
		}
	}
	return movements
}

// boundOf returns compass bound of the heading. Sectors are a quarter turn wide, centered on the axes
func boundOf(heading Vector3) BoundType {
	angle := angleToAxis(heading)
	switch {
	case -0.75*math.Pi <= angle && angle < -0.25*math.Pi:
		return BOUND_SB
	case -0.25*math.Pi <= angle && angle < 0.25*math.Pi:
		return BOUND_EB
	case 0.25*math.Pi <= angle && angle < 0.75*math.Pi:
		return BOUND_NB
	default:
		return BOUND_WB
	}
}

// turnBetween classifies the turn from incoming heading to outgoing heading.
// Headings within 45 degrees go through, beyond 135 degrees turn back
func turnBetween(incoming, outgoing Vector3) MovementType {
	angleDiff := angleToAxis(outgoing) - angleToAxis(incoming)
	if angleDiff < -math.Pi {
		angleDiff += twoPi
	}
	if angleDiff > math.Pi {
		angleDiff -= twoPi
	}
	switch {
	case -0.25*math.Pi <= angleDiff && angleDiff <= 0.25*math.Pi:
		return MOVEMENT_THRU
	case angleDiff < -0.25*math.Pi:
		return MOVEMENT_RIGHT
	case angleDiff <= 0.75*math.Pi:
		return MOVEMENT_LEFT
	default:
		return MOVEMENT_U_TURN
	}
}

type BoundType uint16

const (
	BOUND_SB = BoundType(iota + 1)
	BOUND_EB
	BOUND_NB
	BOUND_WB
)

func (iotaIdx BoundType) String() string {
	return [...]string{"SB", "EB", "NB", "WB"}[iotaIdx-1]
}

type MovementType uint16

const (
	MOVEMENT_THRU = MovementType(iota + 1)
	MOVEMENT_RIGHT
	MOVEMENT_LEFT
	MOVEMENT_U_TURN

	MOVEMENT_UNDEFINED = MovementType(0)
)

func (iotaIdx MovementType) String() string {
	return [...]string{"undefined", "thru", "right", "left", "uturn"}[iotaIdx]
}

type MovementCompositeType uint16

const (
	MOVEMENT_NONE = MovementCompositeType(0)
)

func (iotaIdx MovementCompositeType) String() string {
	return [...]string{"undefined", "SBT", "SBR", "SBL", "SBU", "EBT", "EBR", "EBL", "EBU", "NBT", "NBR", "NBL", "NBU", "WBT", "WBR", "WBL", "WBU"}[iotaIdx]
}
