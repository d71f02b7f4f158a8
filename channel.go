package crdesc

type ChannelType uint16

const (
	CHANNEL_ROAD = ChannelType(iota + 1)
	CHANNEL_BUS
)

func (iotaIdx ChannelType) String() string {
	return [...]string{"Road", "Bus"}[iotaIdx-1]
}

// getChannelType returns channel type for given string. Anything but "Bus" is a road lane.
func getChannelType(str string) ChannelType {
	if str == CHANNEL_BUS.String() {
		return CHANNEL_BUS
	}
	return CHANNEL_ROAD
}

// Direction is lane's flow direction relative to the intersection center
type Direction uint16

const (
	DIRECTION_IN = Direction(iota + 1)
	DIRECTION_OUT
)

func (iotaIdx Direction) String() string {
	return [...]string{"in", "out"}[iotaIdx-1]
}

var (
	directions = map[string]Direction{
		"in":  DIRECTION_IN,
		"out": DIRECTION_OUT,
	}
)

// Channel is a single traffic lane of a Way
type Channel struct {
	Type      ChannelType
	Direction Direction
}
