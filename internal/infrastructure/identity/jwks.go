package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

var (
	// ErrAuthorityUnavailable means the key set could not be fetched or decoded.
	ErrAuthorityUnavailable = errors.New("identity provider unavailable")

	errUnknownKey = errors.New("signing key not found in key set")
)

const defaultMinRefreshInterval = time.Minute

type keySetOptions struct {
	URL                string
	Client             *http.Client
	Timeout            time.Duration
	RefreshInterval    time.Duration
	MinRefreshInterval time.Duration
}

// keySet serves the realm's signing keys. The set is fetched on first use,
// refreshed every RefreshInterval, and refetched for an unknown kid at most
// once per MinRefreshInterval.
type keySet struct {
	opts   keySetOptions
	logger logger.Interface

	ctx    context.Context
	cancel context.CancelFunc

	once    sync.Once
	kf      keyfunc.Keyfunc
	initErr error

	// lastFailure is set when the most recent fetch failed and cleared when
	// a fetched set is stored.
	lastFailure atomic.Pointer[error]
}

func newKeySet(opts keySetOptions, log logger.Interface) *keySet {
	if opts.MinRefreshInterval <= 0 {
		opts.MinRefreshInterval = defaultMinRefreshInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &keySet{
		opts:   opts,
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *keySet) init() {
	s.once.Do(func() {
		remote, err := jwkset.NewStorageFromHTTP(s.opts.URL, jwkset.HTTPClientStorageOptions{
			Client:                    s.opts.Client,
			Ctx:                       s.ctx,
			HTTPTimeout:               s.opts.Timeout,
			NoErrorReturnFirstHTTPReq: true,
			RefreshErrorHandler:       s.recordFailure,
			RefreshInterval:           s.opts.RefreshInterval,
			Storage:                   trackedStorage{MemoryJWKSet: jwkset.NewMemoryStorage(), set: s},
		})
		if err != nil {
			s.initErr = err
			return
		}

		client, err := jwkset.NewHTTPClient(jwkset.HTTPClientOptions{
			HTTPURLs:          map[string]jwkset.Storage{s.opts.URL: remote},
			RateLimitWaitMax:  s.opts.Timeout,
			RefreshUnknownKID: rate.NewLimiter(rate.Every(s.opts.MinRefreshInterval), 1),
		})
		if err != nil {
			s.initErr = err
			return
		}

		s.kf, s.initErr = keyfunc.New(keyfunc.Options{
			Ctx:          s.ctx,
			Storage:      client,
			UseWhitelist: []jwkset.USE{jwkset.UseSig},
		})
	})
}

// lookup returns a jwt.Keyfunc resolving the token's kid. Failures while the
// realm is unreachable wrap ErrAuthorityUnavailable.
func (s *keySet) lookup(ctx context.Context) jwt.Keyfunc {
	s.init()
	return func(token *jwt.Token) (interface{}, error) {
		if kid, _ := token.Header["kid"].(string); kid == "" {
			return nil, errUnknownKey
		}
		if s.initErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuthorityUnavailable, s.initErr)
		}

		key, err := s.kf.KeyfuncCtx(ctx)(token)
		if err != nil {
			if failure := s.lastFailure.Load(); failure != nil {
				return nil, fmt.Errorf("%w: %v", ErrAuthorityUnavailable, *failure)
			}
			return nil, err
		}
		return key, nil
	}
}

func (s *keySet) recordFailure(_ context.Context, err error) {
	s.lastFailure.Store(&err)
	s.logger.Warnw("signing key refresh failed", "url", s.opts.URL, "error", err)
}

func (s *keySet) close() {
	s.cancel()
}

// trackedStorage is the in-memory key store behind the HTTP fetcher. Every
// successful fetch ends in KeyReplaceAll.
type trackedStorage struct {
	*jwkset.MemoryJWKSet
	set *keySet
}

func (t trackedStorage) KeyReplaceAll(ctx context.Context, given []jwkset.JWK) error {
	if err := t.MemoryJWKSet.KeyReplaceAll(ctx, given); err != nil {
		return err
	}
	t.set.lastFailure.Store(nil)
	t.set.logger.Debugw("refreshed signing keys", "url", t.set.opts.URL, "keys", len(given))
	return nil
}
