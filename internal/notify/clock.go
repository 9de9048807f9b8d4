package notify

import "time"

// IST is Asia/Kolkata, or a fixed +05:30 zone when no tz database is
// available.
var IST = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// FormatTime renders t in IST as e.g.
// "Friday, 17 October 2025 at 3:04:05 pm IST".
func FormatTime(t time.Time) string {
	return t.In(IST).Format("Monday, 2 January 2006 at 3:04:05 pm MST")
}
