package hotel

// Hotel tracks a property and its room inventory. AvailableRooms counts the
// rooms not held by an active reservation; it is adjusted incrementally by
// Reserve and Cancel, never recomputed from the reservation set, so it holds
// 0 <= AvailableRooms <= TotalRooms only as long as inventory is mutated
// through the reservation lifecycle.
type Hotel struct {
	ID             string `json:"hotel_id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}
