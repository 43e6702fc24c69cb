package attendance

// Classify derives a day's status. A nil entry or one without a check-in is Absent.
func Classify(entry *Entry) DailyStatus {
	if entry == nil || entry.CheckIn == nil {
		return StatusAbsent
	}
	if entry.IsLate {
		return StatusLate
	}
	return StatusPresent
}

// WorkHours is check-out minus check-in in fractional hours, or 0 when either
// is missing. Both times are taken on the same day, so a check-out earlier in
// the day than the check-in gives a negative value.
func WorkHours(entry *Entry) float64 {
	if entry == nil || entry.CheckIn == nil || entry.CheckOut == nil {
		return 0
	}
	return entry.CheckOut.Sub(*entry.CheckIn).Hours()
}
