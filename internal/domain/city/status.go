package city

type Status string

const (
	StatusOK           Status = "ok"
	StatusNoPower      Status = "no_power"
	StatusNoRoadAccess Status = "no_road_access"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusNoPower, StatusNoRoadAccess:
		return true
	default:
		return false
	}
}
