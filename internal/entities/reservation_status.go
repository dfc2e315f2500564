package entities

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCompleted ReservationStatus = "completed"
)

// validNext - допустимые переходы жизненного цикла бронирования.
// Из rejected и completed выхода нет.
var validNext = map[ReservationStatus]map[ReservationStatus]bool{
	StatusPending:   {StatusApproved: true, StatusRejected: true},
	StatusApproved:  {StatusCompleted: true},
	StatusRejected:  {},
	StatusCompleted: {},
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

func CanTransition(from, to ReservationStatus) bool {
	return validNext[from][to]
}
