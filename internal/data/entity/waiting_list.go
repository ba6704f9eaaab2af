package entity

// WaitlistEntry is one passenger queued for a full flight.
type WaitlistEntry struct {
	Username      string
	PassengerName string
}

// WaitingList is a FIFO queue of passengers per flight. Promotion always
// takes the front entry.
type WaitingList struct {
	FlightID string
	Entries  []WaitlistEntry
}

func NewWaitingList(flightID string) *WaitingList {
	return &WaitingList{FlightID: flightID}
}

func (w *WaitingList) Add(username, passengerName string) {
	w.Entries = append(w.Entries, WaitlistEntry{Username: username, PassengerName: passengerName})
}

func (w *WaitingList) Remove(username string) bool {
	for i, e := range w.Entries {
		if e.Username == username {
			w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
			return true
		}
	}
	return false
}

func (w *WaitingList) Next() (WaitlistEntry, bool) {
	if len(w.Entries) == 0 {
		return WaitlistEntry{}, false
	}
	return w.Entries[0], true
}

func (w *WaitingList) IsEmpty() bool {
	return len(w.Entries) == 0
}
