package queries

import "context"

type NotificationReadStore interface {
	GetPendingJobs(ctx context.Context, limit int32) ([]*NotificationJobView, error)
}

// NotificationQueries lets admins inspect the outbox of queued customer emails.
type NotificationQueries interface {
	ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error) {
	limit = ValidateLimit(limit)
	return q.store.GetPendingJobs(ctx, int32(limit)) // #nosec G115 -- limit is capped
}
