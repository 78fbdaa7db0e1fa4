package city

// Occupant type tags.
const (
	OccupantTypeBuilding uint32 = 0x278128A0
)

// Property IDs read from an occupant's property holder.
const (
	PropertyBuildingPurpose uint32 = 0x27812833
	PropertyUserVisibleName uint32 = 0x8A416A99
)

// Message types delivered by the host message server.
const (
	MessagePostCityInit    uint32 = 0x26D31EC1
	MessagePreCityShutdown uint32 = 0x26D31EC2
	MessageCheatIssued     uint32 = 0x230E27AC
)
