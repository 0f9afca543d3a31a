package worker

import "time"

func SetReaperClock(r *ReaperWorker, now func() time.Time) {
	r.now = now
}
