package application

import (
	"testing"
	"time"

	"seokit/middleware/quota/domain"
)

type fakeBucket struct {
	allow  bool
	tokens float64
}

func (f fakeBucket) Allow() bool     { return f.allow }
func (f fakeBucket) Tokens() float64 { return f.tokens }

type fakeStore struct {
	b domain.Bucket
}

func (s fakeStore) Bucket(domain.ClientKey) domain.Bucket { return s.b }

func TestService_Decide_AllowsWhenNoStore(t *testing.T) {
	dec := Service{}.Decide("k")
	if !dec.Allowed {
		t.Fatalf("expected allowed")
	}
	if dec.RetryAfter != 0 {
		t.Fatalf("expected RetryAfter=0 when allowed, got %s", dec.RetryAfter)
	}
	if dec.Remaining != -1 {
		t.Fatalf("expected Remaining=-1 (unlimited), got %d", dec.Remaining)
	}
}

func TestService_Decide_ReportsRemainingTokens(t *testing.T) {
	svc := Service{Store: fakeStore{b: fakeBucket{allow: true, tokens: 4.7}}}
	dec := svc.Decide("k")
	if !dec.Allowed {
		t.Fatalf("expected allowed")
	}
	if dec.Remaining != 4 {
		t.Fatalf("expected Remaining=4, got %d", dec.Remaining)
	}
}

func TestService_Decide_NegativeTokensClampToZero(t *testing.T) {
	svc := Service{Store: fakeStore{b: fakeBucket{allow: true, tokens: -0.3}}}
	if got := svc.Decide("k").Remaining; got != 0 {
		t.Fatalf("expected Remaining=0, got %d", got)
	}
}

func TestService_Decide_BlocksWithRetryAfterDefault(t *testing.T) {
	svc := Service{Store: fakeStore{b: fakeBucket{allow: false}}}
	dec := svc.Decide("k")
	if dec.Allowed {
		t.Fatalf("expected blocked")
	}
	if dec.RetryAfter != time.Second {
		t.Fatalf("expected default RetryAfter=1s, got %s", dec.RetryAfter)
	}
}

func TestService_Decide_BlocksWithConfiguredRetryAfter(t *testing.T) {
	svc := Service{Store: fakeStore{b: fakeBucket{allow: false}}, RetryAfter: 2500 * time.Millisecond}
	dec := svc.Decide("k")
	if dec.Allowed {
		t.Fatalf("expected blocked")
	}
	if dec.RetryAfter != 2500*time.Millisecond {
		t.Fatalf("expected RetryAfter=2.5s, got %s", dec.RetryAfter)
	}
}
