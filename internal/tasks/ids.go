package tasks

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current logical time in milliseconds.
type Clock func() int64

func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// IDProvider hands out task identifiers.
type IDProvider interface {
	NewID(now int64) string
}

// DefaultIDs is used by Add when no id is supplied.
var DefaultIDs IDProvider = UUIDProvider{}

const (
	IDFormatUUID  = "uuid"
	IDFormatShort = "short"
)

// NewIDProvider returns the provider for an id format name.
func NewIDProvider(format string) (IDProvider, error) {
	switch format {
	case IDFormatUUID:
		return UUIDProvider{}, nil
	case IDFormatShort:
		return ShortIDProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown id format: %s", format)
	}
}

type UUIDProvider struct{}

func (UUIDProvider) NewID(int64) string {
	return uuid.NewString()
}

// ShortIDProvider produces compact ids of the form "t_" followed by six
// random base36 characters and the last four base36 characters of now.
type ShortIDProvider struct{}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func (ShortIDProvider) NewID(now int64) string {
	buf := make([]byte, 0, 12)
	buf = append(buf, 't', '_')
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		buf = append(buf, base36[n.Int64()])
	}

	stamp := strconv.FormatInt(now, 36)
	if len(stamp) > 4 {
		stamp = stamp[len(stamp)-4:]
	}
	return string(append(buf, stamp...))
}

// SequenceIDs returns the given ids in order and then falls back to
// "id-<n>". It is meant for deterministic callers such as tests.
type SequenceIDs struct {
	mu   sync.Mutex
	ids  []string
	next int
}

func NewSequenceIDs(ids ...string) *SequenceIDs {
	return &SequenceIDs{ids: ids}
}

func (s *SequenceIDs) NewID(int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++
	if n < len(s.ids) {
		return s.ids[n]
	}
	return "id-" + strconv.Itoa(n+1)
}
