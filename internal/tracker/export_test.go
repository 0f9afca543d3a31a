package tracker

import (
	"time"

	"careeros/pkg/storage"
)

func NewWithClock(storage storage.Storage, now func() time.Time) Tracker {
	return &tracker{storage: storage, now: now}
}
