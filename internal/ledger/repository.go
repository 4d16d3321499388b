package ledger

import (
	"sync"
)

// Repository is the append-only booking history. No update or delete is
// exposed anywhere; the ledger lives exactly as long as the process.
type Repository interface {
	Append(booking Booking)
	ListAll() []Booking
	ListByUser(userID string) []Booking
	Count() int
}

type memoryRepository struct {
	mu       sync.RWMutex
	bookings []Booking
}

func NewRepository() Repository {
	return &memoryRepository{}
}

// Append prepends, keeping the newest booking first.
func (r *memoryRepository) Append(booking Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append([]Booking{booking}, r.bookings...)
}

func (r *memoryRepository) ListAll() []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *memoryRepository) ListByUser(userID string) []Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (r *memoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
