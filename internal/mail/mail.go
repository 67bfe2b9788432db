package mail

import (
	"context"
)

// Sender delivers a one-time code to a recipient. Implementations must not
// panic across the boundary; callers treat any error as "not sent".
type Sender interface {
	SendOTP(ctx context.Context, recipient, code string) error
}
