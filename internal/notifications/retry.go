package notifications

import (
	"context"
	"time"
)

// RetryingSender retries a VerificationSender a fixed number of times with a
// linear backoff. The last error is returned when every attempt fails.
type RetryingSender struct {
	next     VerificationSender
	attempts int
	backoff  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewRetryingSender(next VerificationSender, attempts int, backoff time.Duration) *RetryingSender {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingSender{
		next:     next,
		attempts: attempts,
		backoff:  backoff,
		sleep:    sleepContext,
	}
}

func (s *RetryingSender) SendVerificationRequest(ctx context.Context, identifier, token string) error {
	var err error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err = s.next.SendVerificationRequest(ctx, identifier, token); err == nil {
			return nil
		}
		if attempt == s.attempts {
			break
		}
		if sleepErr := s.sleep(ctx, time.Duration(attempt)*s.backoff); sleepErr != nil {
			return err
		}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
