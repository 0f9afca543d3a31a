package v1handler

import (
	"net/http"

	"careeros/pkg/controller"
	"careeros/pkg/serrors"
)

// rateLimited throttles next per authenticated user. It must run behind the
// auth middleware.
func (h *Handler) rateLimited(limiter *controller.KeyedLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(GetUserIDFromContext(r.Context()).String()) {
			w.Header().Set("Retry-After", "60")
			h.writeError(w, r, serrors.With(serrors.ErrRateLimited, "too many requests, try again later"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
